package types

// Symbol represents a named entity in the source code.
type Symbol struct {
	Name string
	Type Type
}

// Scope holds the symbols of one function activation. Blocks inside a
// function share its scope; only function bodies open a new one.
type Scope struct {
	Parent  *Scope
	Symbols map[string]*Symbol
}

// NewScope creates a new scope with an optional parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Parent:  parent,
		Symbols: make(map[string]*Symbol),
	}
}

// Insert adds a symbol to the current scope, replacing any earlier
// symbol of the same name.
func (s *Scope) Insert(name string, typ Type) {
	s.Symbols[name] = &Symbol{Name: name, Type: typ}
}

// Lookup finds a symbol in the current scope or any parent scope.
func (s *Scope) Lookup(name string) *Symbol {
	if sym, ok := s.Symbols[name]; ok {
		return sym
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil
}

// Clone copies the symbol table of s. The parent chain is shared.
func (s *Scope) Clone() *Scope {
	out := NewScope(s.Parent)
	for name, sym := range s.Symbols {
		out.Symbols[name] = sym
	}
	return out
}
