package diag

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Located is anything the log can attach an entry to: a syntax tree node
// that knows where it starts and which source text it covers.
type Located interface {
	Span() Span
	Text() string
}

// Entry is a single recorded semantic error.
type Entry struct {
	Span     Span
	Source   string // exact source text of the offending node
	Category Category
	Message  string
}

// Line is the source line on which the error was detected.
func (e Entry) Line() int { return e.Span.Start.Line }

func (e Entry) String() string {
	return fmt.Sprintf("line %d : %s : %s\n    %s", e.Line(), e.Category, e.Message, e.Source)
}

type lineEntries struct {
	order    []string // insertion order of sources on this line
	bySource map[string]*Entry
}

// Log collects semantic errors for one analysis run. Entries are keyed by
// (line, source text): adding a second entry under the same key replaces
// the first one in place.
type Log struct {
	lines map[int]*lineEntries
	total int
}

func NewLog() *Log {
	return &Log{lines: map[int]*lineEntries{}}
}

// Add records an error for n.
func (l *Log) Add(n Located, c Category, msg string) {
	sp := n.Span()
	src := n.Text()
	le, ok := l.lines[sp.Start.Line]
	if !ok {
		le = &lineEntries{bySource: map[string]*Entry{}}
		l.lines[sp.Start.Line] = le
	}
	if _, exists := le.bySource[src]; !exists {
		le.order = append(le.order, src)
		l.total++
	}
	le.bySource[src] = &Entry{Span: sp, Source: src, Category: c, Message: msg}
}

// IncludesExactly reports whether the entry recorded for source on line has
// category c. It is false when there is no entry under that key.
func (l *Log) IncludesExactly(c Category, line int, source string) bool {
	le, ok := l.lines[line]
	if !ok {
		return false
	}
	e, ok := le.bySource[source]
	return ok && e.Category == c
}

// IncludesOnLine reports whether any entry on line has category c.
func (l *Log) IncludesOnLine(c Category, line int) bool {
	le, ok := l.lines[line]
	if !ok {
		return false
	}
	for _, e := range le.bySource {
		if e.Category == c {
			return true
		}
	}
	return false
}

// CountOf returns how many entries carry category c.
func (l *Log) CountOf(c Category) int {
	n := 0
	for _, le := range l.lines {
		for _, e := range le.bySource {
			if e.Category == c {
				n++
			}
		}
	}
	return n
}

func (l *Log) TotalEntries() int { return l.total }

func (l *Log) Empty() bool { return l.total == 0 }

// Entries returns all entries ordered by line, then by first insertion.
func (l *Log) Entries() []Entry {
	lines := make([]int, 0, len(l.lines))
	for ln := range l.lines {
		lines = append(lines, ln)
	}
	sort.Ints(lines)

	out := make([]Entry, 0, l.total)
	for _, ln := range lines {
		le := l.lines[ln]
		for _, src := range le.order {
			out = append(out, *le.bySource[src])
		}
	}
	return out
}

func (l *Log) String() string {
	var parts []string
	for _, e := range l.Entries() {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "\n")
}

type jsonEntry struct {
	Line     int    `json:"line"`
	Col      int    `json:"col"`
	Code     string `json:"code"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Source   string `json:"source"`
}

// MarshalJSON renders the ordered entries as a JSON array.
func (l *Log) MarshalJSON() ([]byte, error) {
	out := make([]jsonEntry, 0, l.total)
	for _, e := range l.Entries() {
		out = append(out, jsonEntry{
			Line:     e.Line(),
			Col:      e.Span.Start.Col,
			Code:     e.Category.Code(),
			Category: e.Category.String(),
			Message:  e.Message,
			Source:   e.Source,
		})
	}
	return json.Marshal(out)
}
