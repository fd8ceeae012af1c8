package term

import "os"

// Color controls whether Red/Green/Blue emit ANSI escapes. It starts off
// when NO_COLOR is set.
var Color = os.Getenv("NO_COLOR") == ""

func paint(code, s string) string {
	if !Color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func Red(s string) string    { return paint("31", s) }
func Yellow(s string) string { return paint("33", s) }
func Green(s string) string  { return paint("32", s) }
func Blue(s string) string   { return paint("94", s) }
