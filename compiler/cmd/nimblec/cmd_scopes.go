package main

import (
	"github.com/nimblelang/nimble/compiler/internal/build"
	"github.com/nimblelang/nimble/compiler/internal/symtab"
	"github.com/nimblelang/nimble/compiler/internal/term"
)

/* ---------- scopes ---------- */

// cmdScopes prints the scope tree even when the program has errors; symbols
// that failed inference show as ERROR.
func cmdScopes(args []string) int {
	a, err := parseArgs(args, "verbose")
	if err != nil {
		term.Eprintln("usage: nimblec scopes [--verbose] <file.nim>")
		return 2
	}
	a.noWarn = true

	u, res, err := build.Check(a.file, analysisOptions(a))
	if err != nil {
		reportLoadError(u, err, false)
		return 1
	}
	term.Printf("%s", symtab.Dump(res.Global))
	return 0
}
