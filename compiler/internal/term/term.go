package term

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdout and Stderr are where the print helpers write; tests swap them.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Print helpers ignore (n, err) to satisfy linters.
func Printf(format string, a ...any)  { _, _ = fmt.Fprintf(Stdout, format, a...) }
func Println(a ...any)                { _, _ = fmt.Fprintln(Stdout, a...) }
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(Stderr, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(Stderr, a...) }

func Bprintf(b *strings.Builder, format string, a ...any) { _, _ = fmt.Fprintf(b, format, a...) }

// Capture redirects Stdout and Stderr into buffers until restore is called.
func Capture() (out, errOut *strings.Builder, restore func()) {
	prevOut, prevErr := Stdout, Stderr
	out, errOut = &strings.Builder{}, &strings.Builder{}
	Stdout, Stderr = out, errOut
	return out, errOut, func() { Stdout, Stderr = prevOut, prevErr }
}
