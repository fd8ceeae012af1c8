package diag

import (
	"fmt"
	"strings"
)

/* ---------- caret-snippet rendering ---------- */

// Render formats e in a Rust-like layout with the offending line and an
// underline spanning the node:
//
//	error[NSE0002]: Variable [x] is undefined.
//	 --> main.nim:3:7
//	 3 | print x
//	   |       ^ undefined name
func Render(e Entry, file string, src []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "error[%s]: %s\n", e.Category.Code(), e.Message)
	if file != "" {
		fmt.Fprintf(&b, " --> %s:%d:%d\n", file, e.Line(), e.Span.Start.Col)
	}
	writeSnippet(&b, src, e.Span, e.Category.Title())
	if help := e.Category.entry().Help; help != "" {
		fmt.Fprintf(&b, "help: %s\n", help)
	}
	return b.String()
}

// RenderDiagnostic formats a syntax error the same way.
func RenderDiagnostic(d *Diagnostic, file string, src []byte) string {
	var b strings.Builder
	if d.Code != "" {
		fmt.Fprintf(&b, "error[%s]: %s\n", d.Code, d.Msg)
	} else {
		fmt.Fprintf(&b, "error: %s\n", d.Msg)
	}
	if file != "" && d.Span.Start.Line > 0 {
		fmt.Fprintf(&b, " --> %s:%d:%d\n", file, d.Span.Start.Line, d.Span.Start.Col)
	}
	writeSnippet(&b, src, d.Span, "")
	return b.String()
}

func writeSnippet(b *strings.Builder, src []byte, sp Span, label string) {
	if sp.Start.Line <= 0 || len(src) == 0 {
		return
	}
	lineText := getLineText(src, sp.Start.Line)
	lnStr := fmt.Sprintf("%d", sp.Start.Line)
	linePrefix := " " + lnStr + " | "
	underPrefix := " " + strings.Repeat(" ", len(lnStr)) + " | "

	endCol := 0
	if sp.End.Line == sp.Start.Line {
		endCol = sp.End.Col
	}
	fmt.Fprintf(b, "%s%s\n", linePrefix, lineText)
	b.WriteString(underPrefix)
	writeUnderline(b, lineText, sp.Start.Col, endCol, label)
	b.WriteByte('\n')
}

func writeUnderline(b *strings.Builder, line string, col, endCol int, label string) {
	raw := []rune(line)
	vis := []rune(visualize(line))
	// columns count runes; tabs widen once visualized
	start := len([]rune(visualize(string(raw[:clamp(col-1, 0, len(raw))]))))
	end := start
	if endCol > 0 && endCol > col {
		stop := len([]rune(visualize(string(raw[:clamp(endCol-1, 0, len(raw))]))))
		end = clamp(stop, start+1, len(vis))
	} else if start < len(vis) {
		end = start + 1
	}
	b.WriteString(strings.Repeat(" ", start))
	b.WriteString("^")
	if end-start > 1 {
		b.WriteString(strings.Repeat("~", end-start-1))
	}
	if strings.TrimSpace(label) != "" {
		b.WriteString(" ")
		b.WriteString(label)
	}
}

func getLineText(src []byte, line int) string {
	lines := strings.Split(string(src), "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}

// visualize expands tabs so the underline lines up with the printed source.
func visualize(s string) string { return strings.ReplaceAll(s, "\t", "    ") }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
