package diag

import "fmt"

// Pos marks a 1-based line/column location in a file.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	Start Pos
	End   Pos
}

// Diagnostic is a compiler message with an optional span and catalog code.
// The parser returns it as its error type.
type Diagnostic struct {
	Span Span
	Code string
	Msg  string
}

func (d *Diagnostic) Error() string {
	msg := d.Msg
	if d.Code != "" {
		msg = d.Code + ": " + msg
	}
	if d.Span.Start.Line == 0 {
		return msg
	}
	return fmt.Sprintf("%d:%d: %s", d.Span.Start.Line, d.Span.Start.Col, msg)
}

// Errorf builds a positioned Diagnostic.
func Errorf(sp Span, code, format string, a ...any) *Diagnostic {
	return &Diagnostic{Span: sp, Code: code, Msg: fmt.Sprintf(format, a...)}
}
