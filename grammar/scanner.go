package grammar

import (
	verr "github.com/parlr-dev/parlr/error"
	"github.com/parlr-dev/parlr/grammar/lexical/dfa"
	"github.com/parlr-dev/parlr/grammar/lexical/parser"
)

// buildScanner compiles the whitespace patterns and every terminal
// into one automaton. Whitespace patterns come first and all token
// ids are symbol indices, so earlier-declared patterns win ties and a
// recognized token maps straight back to its symbol.
func (g *Grammar) buildScanner() error {
	var pats []parser.Pattern
	for _, re := range g.whitespacePatterns {
		pats = append(pats, parser.Pattern{
			Expr:  re,
			Token: g.iWhitespace,
		})
	}
	for i := range g.symbols {
		if g.symbols[i].Kind != SymbolKindTerminal {
			continue
		}
		pats = append(pats, parser.Pattern{
			Expr:    g.symbols[i].Name,
			Token:   i,
			Literal: g.symbols[i].Literal,
		})
	}

	tree, err := parser.ParsePatterns(pats)
	if err != nil {
		return &verr.SpecError{
			Cause:  err,
			Source: g.source,
			Offset: -1,
		}
	}
	d, err := dfa.Build(tree)
	if err != nil {
		return &verr.SpecError{
			Cause:  err,
			Source: g.source,
			Offset: -1,
		}
	}

	g.dfa = d
	return nil
}

// DFA returns the compiled scanner automaton.
func (g *Grammar) DFA() *dfa.DFA {
	return g.dfa
}
