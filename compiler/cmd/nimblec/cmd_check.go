package main

import (
	"encoding/json"

	"github.com/nimblelang/nimble/compiler/internal/build"
	"github.com/nimblelang/nimble/compiler/internal/check"
	"github.com/nimblelang/nimble/compiler/internal/diag"
	"github.com/nimblelang/nimble/compiler/internal/term"
)

/* ---------- check ---------- */

type jsonWarning struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonReport struct {
	File     string        `json:"file"`
	OK       bool          `json:"ok"`
	Errors   *diag.Log     `json:"errors"`
	Warnings []jsonWarning `json:"warnings"`
}

func cmdCheck(args []string) int {
	a, err := parseArgs(args, "format", "pretty", "no-paren-errors", "no-warnings", "Werror", "verbose")
	if err != nil {
		term.Eprintln("usage: nimblec check [--format=text|json] [--pretty] [--no-paren-errors] [--no-warnings] [--Werror] [--verbose] <file.nim>")
		return 2
	}

	u, res, err := build.Check(a.file, analysisOptions(a))
	if err != nil {
		reportLoadError(u, err, a.pretty)
		return 1
	}

	if a.format == "json" {
		if err := writeJSONReport(u, res); err != nil {
			term.Eprintf("encode report: %v\n", err)
			return 1
		}
	} else {
		writeTextReport(u, res, a.pretty)
	}

	if !res.OK() || (a.werr && len(res.Warnings) > 0) {
		return 1
	}
	return 0
}

func writeTextReport(u *build.Unit, res *check.Result, pretty bool) {
	for _, w := range res.Warnings {
		term.Eprintf("%s %s\n", term.Yellow("warning:"), w.String())
	}
	for _, e := range res.Log.Entries() {
		if pretty {
			term.Eprintf("%s", diag.Render(e, u.Path, u.Src))
			continue
		}
		term.Eprintf("%s\n", e.String())
	}
	n := res.Log.TotalEntries()
	if n == 0 {
		term.Printf("%s %s\n", u.Path, term.Green("ok"))
	}
	term.Eprintf("summary: %d error(s), %d warning(s)\n", n, len(res.Warnings))
}

func writeJSONReport(u *build.Unit, res *check.Result) error {
	r := jsonReport{File: u.Path, OK: res.OK(), Errors: res.Log, Warnings: []jsonWarning{}}
	for _, w := range res.Warnings {
		r.Warnings = append(r.Warnings, jsonWarning{
			Line:    w.Span.Start.Line,
			Col:     w.Span.Start.Col,
			Code:    w.Code,
			Message: w.Msg,
		})
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	term.Printf("%s\n", data)
	return nil
}
