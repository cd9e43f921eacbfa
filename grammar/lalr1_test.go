package grammar

import (
	"testing"
)

func TestLookaheadSeedOnStartItem(t *testing.T) {
	g, err := Compile(exprGrammar)
	if err != nil {
		t.Fatal(err)
	}

	iStartItem := g.StateItems(0)[0]
	la := g.lookaheads[iStartItem]
	if !la.symbols.get(g.EndSymbol()) {
		t.Fatal("the start item must carry end of input in its lookahead")
	}
}

func TestLookaheadPropagation(t *testing.T) {
	g, err := Compile(`
g {
  s: 'a' s 'b' [nest] | ;
}
`)
	if err != nil {
		t.Fatal(err)
	}

	nestProd := -1
	for i := range g.Productions() {
		if g.Productions()[i].Action == "nest" {
			nestProd = i
		}
	}
	if nestProd < 0 {
		t.Fatal("nest production not found")
	}

	iItem, ok := g.findItem(Item{Prod: nestProd, Dot: 3})
	if !ok {
		t.Fatal("reducible nest item not found")
	}

	b, _ := g.FindSymbol("b")
	la := g.lookaheads[iItem]
	if !la.symbols.get(b) || !la.symbols.get(g.EndSymbol()) {
		t.Fatal("the completed nesting must be reducible on 'b' and end of input")
	}
	a, _ := g.FindSymbol("a")
	if la.symbols.get(a) {
		t.Fatal("'a' must not enter the lookahead")
	}
}

func TestLookaheadOfEmptyProduction(t *testing.T) {
	g, err := Compile(`
g {
  s: 'a' s 'b' [nest] | ;
}
`)
	if err != nil {
		t.Fatal(err)
	}

	emptyProd := -1
	for i := range g.Productions() {
		p := &g.Productions()[i]
		if len(p.RHS) == 0 {
			emptyProd = i
		}
	}
	if emptyProd < 0 {
		t.Fatal("empty production not found")
	}

	iItem, ok := g.findItem(Item{Prod: emptyProd, Dot: 0})
	if !ok {
		t.Fatal("empty-production item not found")
	}

	// The empty alternative reduces both before 'b' (inside a
	// nesting) and at end of input (the outermost position).
	b, _ := g.FindSymbol("b")
	la := g.lookaheads[iItem]
	if !la.symbols.get(b) || !la.symbols.get(g.EndSymbol()) {
		t.Fatal("the empty alternative must be reducible on 'b' and end of input")
	}
}
