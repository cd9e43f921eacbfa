package grammar

import (
	"github.com/parlr-dev/parlr/grammar/lexical/dfa"
)

// Grammar owns everything derived from one grammar definition. It is
// built once by Compile and immutable afterwards; a compiled grammar
// is safe to share between readers.
type Grammar struct {
	Name string

	source string

	symbols            []Symbol
	productions        []Production
	whitespacePatterns []string

	iStart      int
	iEnd        int
	iError      int
	iWhitespace int
	currentPrec int

	items     []Item
	itemIndex map[Item]int

	states      []state
	transitions [][]Transition
	lookaheads  []lookahead

	dfa *dfa.DFA
}

// Compile builds the full parsing tables for the grammar definition
// in src. It returns either a complete grammar or an error; no
// partial grammar ever escapes.
func Compile(src string) (*Grammar, error) {
	g := &Grammar{
		source:    src,
		itemIndex: map[Item]int{},
	}
	g.addReservedSymbols()

	if err := g.parse(src); err != nil {
		return nil, err
	}
	if err := g.check(); err != nil {
		return nil, err
	}
	if err := g.optimize(); err != nil {
		return nil, err
	}

	g.computeFirsts()
	g.computeFollows()
	g.assignPrecedence()
	g.computeReachableByFirstSymbol()

	g.generateStates()
	g.generateLookaheads()
	g.generateSpontaneousLookaheads()
	g.generatePropagation()
	g.propagateLookaheads()

	if err := g.generateTransitions(); err != nil {
		return nil, err
	}
	if err := g.buildScanner(); err != nil {
		return nil, err
	}

	return g, nil
}

// WhitespacePatterns returns the %whitespace regexes in declaration
// order.
func (g *Grammar) WhitespacePatterns() []string {
	return g.whitespacePatterns
}
