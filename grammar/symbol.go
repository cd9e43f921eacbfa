// Package grammar compiles a grammar definition into its parsing
// tables: the symbol and production sets, the LALR(1) state machine,
// and the scanner automaton recognizing the grammar's terminals.
package grammar

import (
	"fmt"
)

type SymbolKind int

const (
	SymbolKindNull SymbolKind = iota
	SymbolKindTerminal
	SymbolKindNonTerminal
	SymbolKindEnd
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolKindNull:
		return "null"
	case SymbolKindTerminal:
		return "terminal"
	case SymbolKindNonTerminal:
		return "non-terminal"
	case SymbolKindEnd:
		return "end"
	}
	return "unknown"
}

type AssocType int

const (
	AssocNone AssocType = iota
	AssocLeft
	AssocRight
)

func (a AssocType) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	}
	return "none"
}

// Symbol is one grammar entity, identified by its index in the
// grammar's symbol vector. A symbol's kind never changes after its
// first introduction.
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Assoc AssocType

	// Prec is the symbol's precedence; zero means unset.
	Prec int

	// Literal distinguishes terminals written as '…' literals from
	// terminals written as "…" regexes.
	Literal bool

	// referredAsPrec records that the symbol appeared in a
	// %precedence clause; such a symbol needs no productions.
	referredAsPrec bool

	// productions lists the productions whose left-hand side is this
	// symbol, in declaration order.
	productions []int

	// prodsByFirstSym lists every production reachable from this
	// symbol by repeatedly descending into the first right-hand-side
	// symbol.
	prodsByFirstSym []int

	nullable bool
	firsts   []int
	follows  []int
}

// Reserved symbol names. They occupy the first four slots of the
// symbol vector, in this order.
const (
	startSymbolName      = ".start"
	endSymbolName        = ".end"
	errorSymbolName      = ".error"
	whitespaceSymbolName = ".whitespace"
)

func (g *Grammar) addReservedSymbols() {
	g.iStart = g.addSymbol(startSymbolName, SymbolKindNonTerminal, false)
	g.iEnd = g.addSymbol(endSymbolName, SymbolKindEnd, false)
	g.iError = g.addSymbol(errorSymbolName, SymbolKindNull, false)
	g.iWhitespace = g.addSymbol(whitespaceSymbolName, SymbolKindNull, false)
}

func (g *Grammar) addSymbol(name string, kind SymbolKind, literal bool) int {
	g.symbols = append(g.symbols, Symbol{
		Name:    name,
		Kind:    kind,
		Literal: literal,
	})
	return len(g.symbols) - 1
}

// insertOrFindSymbol resolves name to its symbol index, introducing a
// new symbol when no symbol of the same name, kind, and spelling
// exists yet.
func (g *Grammar) insertOrFindSymbol(name string, kind SymbolKind, literal bool) int {
	for i := range g.symbols {
		s := &g.symbols[i]
		if s.Name == name && s.Kind == kind && s.Literal == literal {
			return i
		}
	}
	return g.addSymbol(name, kind, literal)
}

func (g *Grammar) isReservedSymbol(i int) bool {
	return i == g.iStart || i == g.iEnd || i == g.iError || i == g.iWhitespace
}

// Symbols exposes the symbol vector. Callers must treat it as
// read-only.
func (g *Grammar) Symbols() []Symbol {
	return g.symbols
}

// FindSymbol returns the index of the first symbol with the given
// name.
func (g *Grammar) FindSymbol(name string) (int, bool) {
	for i := range g.symbols {
		if g.symbols[i].Name == name {
			return i, true
		}
	}
	return 0, false
}

// StartSymbol returns the index of the synthetic start symbol.
func (g *Grammar) StartSymbol() int { return g.iStart }

// EndSymbol returns the index of the end-of-input symbol.
func (g *Grammar) EndSymbol() int { return g.iEnd }

// ErrorSymbol returns the index of the error terminal.
func (g *Grammar) ErrorSymbol() int { return g.iError }

// WhitespaceSymbol returns the index of the whitespace symbol.
func (g *Grammar) WhitespaceSymbol() int { return g.iWhitespace }

// describeSymbol renders a symbol reference for diagnostics.
func (g *Grammar) describeSymbol(i int) string {
	return fmt.Sprintf("%q", g.symbols[i].Name)
}
