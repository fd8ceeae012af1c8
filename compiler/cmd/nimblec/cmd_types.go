package main

import (
	"fmt"

	"github.com/nimblelang/nimble/compiler/internal/build"
	"github.com/nimblelang/nimble/compiler/internal/term"
)

/* ---------- types ---------- */

func cmdTypes(args []string) int {
	a, err := parseArgs(args, "no-paren-errors", "verbose")
	if err != nil {
		term.Eprintln("usage: nimblec types [--no-paren-errors] [--verbose] <file.nim>")
		return 2
	}
	a.noWarn = true

	u, res, err := build.Check(a.file, analysisOptions(a))
	if err != nil {
		reportLoadError(u, err, false)
		return 1
	}

	for _, e := range res.Types.Entries() {
		sp := e.Node.Span().Start
		term.Printf("%-8s %-32s %s\n", fmt.Sprintf("%d:%d", sp.Line, sp.Col), e.Node.Text(), e.Type)
	}
	if !res.OK() {
		term.Eprintf("%s\n", res.Log.String())
		return 1
	}
	return 0
}
