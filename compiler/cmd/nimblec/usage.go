package main

import "github.com/nimblelang/nimble/compiler/internal/term"

func usage() {
	term.Eprintln("nimblec: Nimble semantic analyzer")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  nimblec <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                   Print version")
	term.Eprintln("  help                                      Show this help")
	term.Eprintln("  lex <file>                                Print the token stream of a .nim file")
	term.Eprintln("  parse [--pretty] <file>                   Parse a .nim file and print the AST outline")
	term.Eprintln("  check [--format=text|json] [--pretty] [--no-paren-errors] [--no-warnings] [--Werror] [--verbose] <file>")
	term.Eprintln("                                            Analyze a .nim file and report semantic errors")
	term.Eprintln("  types [--no-paren-errors] [--verbose] <file>")
	term.Eprintln("                                            Print the inferred type of every expression")
	term.Eprintln("  scopes [--verbose] <file>                 Print the scope tree built by the analyzer")
	term.Eprintln("  repl                                      Interactive session; :help lists commands")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - Flags may appear before or after the file.")
	term.Eprintln("  - A file name without an extension is retried with .nim appended.")
	term.Eprintln("  - Exit status: 0 clean, 1 errors found (or warnings with --Werror), 2 usage.")
}
