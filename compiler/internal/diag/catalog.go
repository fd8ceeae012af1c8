package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "NSE0001"
	Title string `json:"title"` // short human title e.g., "undefined name"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format.
type Registry struct {
	Syntax   map[string]CodeEntry `json:"syntax"`
	Semantic map[string]CodeEntry `json:"semantic"`
	Warning  map[string]CodeEntry `json:"warning"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
// Domain is "syntax", "semantic" or "warning".
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var m map[string]CodeEntry
	switch domain {
	case "syntax":
		m = reg.Syntax
	case "semantic":
		m = reg.Semantic
	case "warning":
		m = reg.Warning
	}
	ce, ok := m[key]
	return ce, ok
}

// MustLookup returns an entry if found; otherwise a placeholder with the
// provided defaultID and title, so codes stay stable if the JSON is missing.
func MustLookup(domain, key, defaultID, defaultTitle string) CodeEntry {
	if ce, ok := Lookup(domain, key); ok {
		return ce
	}
	return CodeEntry{ID: defaultID, Title: defaultTitle}
}

// LookupSyntax is a convenience for the "syntax" domain.
func LookupSyntax(key string) (CodeEntry, bool) { return Lookup("syntax", key) }

// SyntaxCode returns the catalog ID for a syntax error key, or "" if unknown.
func SyntaxCode(key string) string {
	if ce, ok := LookupSyntax(key); ok {
		return ce.ID
	}
	return ""
}
