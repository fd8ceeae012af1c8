package symtab

import (
	"fmt"
	"sort"
	"strings"
)

// Scope names fixed by convention. Function scopes use the function name;
// the $ prefix keeps these from clashing with a function called "main".
const (
	GlobalScopeName = "$global"
	MainScopeName   = "$main"
)

// ScopeID indexes a scope inside its Table.
type ScopeID int

// NoScope marks the absent enclosing scope of the global scope.
const NoScope ScopeID = -1

// Table owns every scope of one analysis. Scopes refer to their enclosing
// scope by ScopeID, so the only owning edges are table → scope and
// parent → child.
type Table struct {
	scopes []*Scope
}

// Len returns the number of scopes allocated so far.
func (t *Table) Len() int { return len(t.scopes) }

// Scope returns the scope with the given id.
func (t *Table) Scope(id ScopeID) (*Scope, bool) {
	if id < 0 || int(id) >= len(t.scopes) {
		return nil, false
	}
	return t.scopes[id], true
}

func (t *Table) alloc(name string, ret Type, parent ScopeID) *Scope {
	s := &Scope{
		Name:       name,
		ReturnType: ret,
		id:         ScopeID(len(t.scopes)),
		parent:     parent,
		table:      t,
		symbols:    map[string]*Symbol{},
		children:   map[string]ScopeID{},
	}
	t.scopes = append(t.scopes, s)
	return s
}

// Scope maps names to symbols and knows its enclosing scope.
type Scope struct {
	Name string
	// ReturnType validates return statements; nil for the global scope.
	ReturnType Type

	id     ScopeID
	parent ScopeID
	table  *Table

	symbols  map[string]*Symbol
	children map[string]ScopeID

	nextVar   int
	nextParam int
}

// NewGlobalScope creates a fresh table and its single root scope.
func NewGlobalScope() *Scope {
	t := &Table{}
	return t.alloc(GlobalScopeName, nil, NoScope)
}

func (s *Scope) ID() ScopeID   { return s.id }
func (s *Scope) Table() *Table { return s.table }

// Enclosing returns the lexically enclosing scope; false for the global scope.
func (s *Scope) Enclosing() (*Scope, bool) {
	if s.parent == NoScope {
		return nil, false
	}
	return s.table.Scope(s.parent)
}

// Global walks up to the root scope.
func (s *Scope) Global() *Scope {
	cur := s
	for {
		p, ok := cur.Enclosing()
		if !ok {
			return cur
		}
		cur = p
	}
}

// CreateChildScope creates a scope enclosed by s and registers it under name.
// A child already registered under name is silently replaced.
func (s *Scope) CreateChildScope(name string, ret Type) *Scope {
	child := s.table.alloc(name, ret, s.id)
	s.children[name] = child.id
	return child
}

// ChildScopeNamed returns the child registered under name.
func (s *Scope) ChildScopeNamed(name string) (*Scope, bool) {
	id, ok := s.children[name]
	if !ok {
		return nil, false
	}
	return s.table.Scope(id)
}

// ChildScopes returns the registered children ordered by name.
func (s *Scope) ChildScopes() []*Scope {
	names := make([]string, 0, len(s.children))
	for n := range s.children {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*Scope, 0, len(names))
	for _, n := range names {
		c, _ := s.table.Scope(s.children[n])
		out = append(out, c)
	}
	return out
}

// Define binds name to a new non-parameter symbol in s, replacing any
// existing binding. Primitive-typed symbols get the next variable ordinal.
func (s *Scope) Define(name string, t Type) *Symbol {
	sym := &Symbol{Name: name, Type: t}
	if _, ok := t.(PrimitiveType); ok {
		sym.Index = s.nextVar
		s.nextVar++
	}
	s.symbols[name] = sym
	return sym
}

// DefineParam binds name to a new parameter symbol with the next parameter ordinal.
func (s *Scope) DefineParam(name string, t Type) *Symbol {
	sym := &Symbol{Name: name, Type: t, IsParam: true, Index: s.nextParam}
	s.nextParam++
	s.symbols[name] = sym
	return sym
}

// ResolveLocally looks name up in s only.
func (s *Scope) ResolveLocally(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// Resolve looks name up in s, then in each enclosing scope outwards.
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	for cur := s; cur != nil; {
		if sym, ok := cur.symbols[name]; ok {
			return sym, true
		}
		p, ok := cur.Enclosing()
		if !ok {
			break
		}
		cur = p
	}
	return nil, false
}

/* ---------- inspection (code generation, tooling, tests) ---------- */

// Parameters returns parameter symbols by ordinal.
func (s *Scope) Parameters() []*Symbol {
	return s.collect(func(sym *Symbol) bool { return sym.IsParam })
}

// LocalVariables returns non-parameter, non-function symbols by ordinal.
func (s *Scope) LocalVariables() []*Symbol {
	return s.collect(func(sym *Symbol) bool { return !sym.IsParam && !sym.IsFunction() })
}

// Functions returns function symbols by name.
func (s *Scope) Functions() []*Symbol {
	out := s.collect(func(sym *Symbol) bool { return sym.IsFunction() && !sym.IsParam })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Scope) collect(keep func(*Symbol) bool) []*Symbol {
	var out []*Symbol
	for _, sym := range s.symbols {
		if keep(sym) {
			out = append(out, sym)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Index != out[j].Index {
			return out[i].Index < out[j].Index
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *Scope) String() string {
	names := make([]string, 0, len(s.symbols))
	for n := range s.symbols {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	ret := "None"
	if s.ReturnType != nil {
		ret = s.ReturnType.String()
	}
	fmt.Fprintf(&b, "scope: %s returns %s", s.Name, ret)
	for _, n := range names {
		fmt.Fprintf(&b, "\n  %s : %s", n, s.symbols[n].Type)
	}
	return b.String()
}
