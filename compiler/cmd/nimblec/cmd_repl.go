package main

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/nimblelang/nimble/compiler/internal/ast"
	"github.com/nimblelang/nimble/compiler/internal/check"
	"github.com/nimblelang/nimble/compiler/internal/diag"
	"github.com/nimblelang/nimble/compiler/internal/lexer"
	"github.com/nimblelang/nimble/compiler/internal/parser"
	"github.com/nimblelang/nimble/compiler/internal/symtab"
	"github.com/nimblelang/nimble/compiler/internal/term"
	"github.com/nimblelang/nimble/compiler/internal/version"
)

const (
	historyFile = ".nimble_history"
	promptMain  = "nim> "
	promptCont  = "...  "
)

/* ---------- session ---------- */

// session accumulates accepted input as one growing program. Functions,
// variable declarations and statements are kept apart so the assembled
// program always has the shape the grammar requires.
type session struct {
	funcs []string
	vars  []string
	stmts []string
	opts  check.Options
}

func newSession() *session {
	opts := check.DefaultOptions()
	opts.Warnings = false
	return &session{opts: opts}
}

func (s *session) program(funcs, vars, stmts []string) string {
	parts := make([]string, 0, len(funcs)+len(vars)+len(stmts))
	parts = append(parts, funcs...)
	parts = append(parts, vars...)
	parts = append(parts, stmts...)
	return strings.Join(parts, "\n")
}

func (s *session) source() string { return s.program(s.funcs, s.vars, s.stmts) }

func (s *session) reset() { s.funcs, s.vars, s.stmts = nil, nil, nil }

// errRejected carries the rendered diagnostics of input that was not kept.
type errRejected struct{ lines []string }

func (e *errRejected) Error() string { return strings.Join(e.lines, "\n") }

// eval analyzes input against everything accepted so far. A bare expression
// reports its type and is not kept; other input is kept only when the whole
// program still analyzes cleanly.
func (s *session) eval(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	if _, err := parser.ParseExpr(input); err == nil {
		return s.typeOf(input)
	}

	funcs, vars, stmts := s.funcs, s.vars, s.stmts
	switch firstKind(input) {
	case lexer.TokFunc:
		funcs = append(append([]string(nil), funcs...), input)
	case lexer.TokVar:
		vars = append(append([]string(nil), vars...), input)
	default:
		stmts = append(append([]string(nil), stmts...), input)
	}

	res, err := s.analyze(s.program(funcs, vars, stmts))
	if err != nil {
		return "", err
	}
	if !res.OK() {
		return "", rejected(res.Log.Entries(), nil)
	}
	s.funcs, s.vars, s.stmts = funcs, vars, stmts
	return "ok", nil
}

// typeOf analyzes expr as the operand of a trailing print statement.
func (s *session) typeOf(expr string) (string, error) {
	res, script, err := s.analyzeScript(s.program(s.funcs, s.vars, append(append([]string(nil), s.stmts...), "print "+expr)))
	if err != nil {
		return "", err
	}
	stmts := script.Main.Stmts.Stmts
	pr := stmts[len(stmts)-1].(*ast.Print)
	t, _ := res.Types.Of(pr.X)

	// The wrapping print adds UNPRINTABLE on top of the real cause; show only the cause.
	if !res.OK() {
		skip := func(e diag.Entry) bool {
			return e.Category == diag.UnprintableExpression && e.Source == pr.Text()
		}
		if r := rejected(res.Log.Entries(), skip); r != nil {
			return "", r
		}
	}
	if t == nil {
		return "", nil
	}
	return t.String(), nil
}

func (s *session) analyze(src string) (*check.Result, error) {
	res, _, err := s.analyzeScript(src)
	return res, err
}

func (s *session) analyzeScript(src string) (*check.Result, *ast.Script, error) {
	script, err := parser.ParseScript(src)
	if err != nil {
		return nil, nil, err
	}
	return check.Analyze(script, s.opts), script, nil
}

// rejected renders entries not matched by skip; nil when none remain.
func rejected(entries []diag.Entry, skip func(diag.Entry) bool) error {
	var lines []string
	for _, e := range entries {
		if skip != nil && skip(e) {
			continue
		}
		lines = append(lines, e.Category.String()+": "+e.Message+"  ("+e.Source+")")
	}
	if len(lines) == 0 {
		return nil
	}
	return &errRejected{lines: lines}
}

func firstKind(src string) lexer.TokKind {
	return lexer.NewSource(src).Next().Kind
}

// incomplete reports whether src stops in the middle of a construct under
// both readings, as a program fragment and as an expression.
func incomplete(src string) bool {
	_, serr := parser.ParseScript(src)
	if serr == nil {
		return false
	}
	_, eerr := parser.ParseExpr(src)
	if eerr == nil {
		return false
	}
	return parser.IsIncomplete(serr) || parser.IsIncomplete(eerr)
}

/* ---------- repl ---------- */

func cmdRepl(args []string) int {
	if len(args) != 0 {
		term.Eprintln("usage: nimblec repl")
		return 2
	}
	term.Printf("%s\n%s\n", version.String(), "type :help for commands, :quit to exit")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	s := newSession()
	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			term.Println()
			return 0
		}
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(code, ":") {
			if done := replCommand(s, code); done {
				return 0
			}
			continue
		}

		out, err := s.eval(code)
		if err != nil {
			term.Eprintf("%s\n", term.Red(err.Error()))
			continue
		}
		if out != "" {
			term.Printf("%s\n", term.Blue(out))
		}
	}
}

// replCommand runs a :command and reports whether the session should end.
func replCommand(s *session, code string) bool {
	switch strings.ToLower(code) {
	case ":quit", ":q":
		return true
	case ":reset":
		s.reset()
		term.Println("session cleared")
	case ":source":
		term.Printf("%s\n", s.source())
	case ":scopes":
		res, err := s.analyze(s.source())
		if err != nil {
			term.Eprintf("%s\n", term.Red(err.Error()))
			break
		}
		term.Printf("%s", symtab.Dump(res.Global))
	case ":help":
		term.Println("  <expr>      show the type of an expression")
		term.Println("  <program>   add functions, var declarations or statements")
		term.Println("  :source     print the accumulated program")
		term.Println("  :scopes     print the scope tree of the accumulated program")
		term.Println("  :reset      forget everything entered so far")
		term.Println("  :quit       exit")
	default:
		term.Println("unknown command. Type :help for a list.")
	}
	return false
}

func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if src := b.String(); !incomplete(src) {
			return src, true
		}
	}
}
