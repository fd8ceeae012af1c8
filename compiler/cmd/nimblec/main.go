package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/nimblelang/nimble/compiler/internal/check"
	"github.com/nimblelang/nimble/compiler/internal/term"
	"github.com/nimblelang/nimble/compiler/internal/version"
)

/* ---------- main ---------- */

func main() {
	flag.Usage = usage
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}
	switch args[0] {
	case "version", "--version", "-v":
		term.Printf("%s\n", version.String())
		return 0
	case "help", "--help", "-h":
		usage()
		return 0
	case "lex":
		return cmdLex(args[1:])
	case "parse":
		return cmdParse(args[1:])
	case "check":
		return cmdCheck(args[1:])
	case "types":
		return cmdTypes(args[1:])
	case "scopes":
		return cmdScopes(args[1:])
	case "repl":
		return cmdRepl(args[1:])
	default:
		term.Eprintf("unknown command: %s\n\n", args[0])
		usage()
		return 2
	}
}

// analysisOptions maps command-line switches onto checker options.
func analysisOptions(a cliArgs) check.Options {
	opts := check.DefaultOptions()
	opts.ReportParenErrors = !a.noParen
	opts.Warnings = !a.noWarn
	if a.verbose {
		opts.Logger = slog.New(slog.NewTextHandler(term.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return opts
}
