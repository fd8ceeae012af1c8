package main

import (
	"fmt"
	"os"

	"github.com/nimblelang/nimble/compiler/internal/build"
	"github.com/nimblelang/nimble/compiler/internal/lexer"
	"github.com/nimblelang/nimble/compiler/internal/term"
)

/* ---------- lex ---------- */

// cmdLex prints the token stream; exit status 1 when any token is illegal.
func cmdLex(args []string) int {
	a, err := parseArgs(args)
	if err != nil {
		term.Eprintln("usage: nimblec lex <file.nim>")
		return 2
	}
	path := build.Resolve(a.file)
	data, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("read %s: %v\n", path, err)
		return 1
	}

	status := 0
	for _, t := range lexer.All(lexer.NewSource(string(data))) {
		pos := fmt.Sprintf("%d:%d", t.Line, t.Col)
		switch t.Kind {
		case lexer.TokEOF:
			term.Printf("%-7s %s\n", pos, t.Kind)
		case lexer.TokIllegal:
			term.Printf("%-7s %s\n", pos, term.Red(fmt.Sprintf("%-8s %q", t.Kind, t.Lex)))
			status = 1
		default:
			term.Printf("%-7s %-8s %q\n", pos, t.Kind, t.Lex)
		}
	}
	return status
}
