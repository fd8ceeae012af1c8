package main

import (
	"errors"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/build"
	"github.com/nimblelang/nimble/compiler/internal/diag"
	"github.com/nimblelang/nimble/compiler/internal/term"
)

/* ---------- parse ---------- */

func cmdParse(args []string) int {
	a, err := parseArgs(args, "pretty")
	if err != nil {
		term.Eprintln("usage: nimblec parse [--pretty] <file.nim>")
		return 2
	}
	u, err := build.Load(a.file)
	if err != nil {
		reportLoadError(u, err, a.pretty)
		return 1
	}
	term.Printf("%s", ast.Dump(u.Script))
	return 0
}

// reportLoadError prints a read or syntax error. Syntax errors get a source
// snippet when pretty is set and the source was read.
func reportLoadError(u *build.Unit, err error, pretty bool) {
	var d *diag.Diagnostic
	if pretty && u != nil && errors.As(err, &d) {
		term.Eprintf("%s", diag.RenderDiagnostic(d, u.Path, u.Src))
		return
	}
	term.Eprintf("%s %v\n", term.Red("error:"), err)
}
