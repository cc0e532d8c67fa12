package domain

// Symbol is one node of a grammar production tree consumed downstream of
// the weight tables. A symbol is either a reference to a non-terminal by
// name, a terminal holding one category, or an optional wrapper around
// exactly one child. Trees are exclusively owned and never cyclic.
type Symbol interface {
	symbol()
}

// NonTerminal references another production by name.
type NonTerminal struct {
	Name string
}

// Terminal matches a single word of the given category.
type Terminal struct {
	Cat Category
}

// Optional marks its child symbol as skippable.
type Optional struct {
	Sym Symbol
}

func (NonTerminal) symbol() {}
func (Terminal) symbol()    {}
func (Optional) symbol()    {}
