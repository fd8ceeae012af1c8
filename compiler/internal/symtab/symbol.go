package symtab

import "fmt"

// Symbol is a named, typed entity recorded in exactly one scope.
type Symbol struct {
	Name    string
	Type    Type
	IsParam bool
	// Index is the declaration ordinal. Parameters and variables are counted
	// separately within a scope; function symbols always have 0.
	Index int
}

func (s *Symbol) String() string {
	if s.IsParam {
		return fmt.Sprintf("Symbol %s : %s (param)", s.Name, s.Type)
	}
	return fmt.Sprintf("Symbol %s : %s", s.Name, s.Type)
}

// IsFunction reports whether s names a function.
func (s *Symbol) IsFunction() bool {
	_, ok := s.Type.(FunctionType)
	return ok
}
