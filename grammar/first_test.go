package grammar

import (
	"testing"
)

// buildAnalyzed parses and analyzes a grammar up to the FIRST/FOLLOW
// computation without building states, so the sets can be inspected
// in isolation.
func buildAnalyzed(t *testing.T, src string) *Grammar {
	t.Helper()
	g := &Grammar{
		source:    src,
		itemIndex: map[Item]int{},
	}
	g.addReservedSymbols()
	if err := g.parse(src); err != nil {
		t.Fatal(err)
	}
	if err := g.check(); err != nil {
		t.Fatal(err)
	}
	if err := g.optimize(); err != nil {
		t.Fatal(err)
	}
	g.computeFirsts()
	g.computeFollows()
	return g
}

func symbolSet(t *testing.T, g *Grammar, names ...string) map[int]bool {
	t.Helper()
	set := map[int]bool{}
	for _, name := range names {
		i, ok := g.FindSymbol(name)
		if !ok {
			t.Fatalf("symbol not found: %v", name)
		}
		set[i] = true
	}
	return set
}

func assertSameSet(t *testing.T, want map[int]bool, got []int) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("set size mismatch: want: %v, got: %v", want, got)
	}
	for _, i := range got {
		if !want[i] {
			t.Fatalf("unexpected member: %v", i)
		}
	}
}

const firstFollowGrammar = `
g {
  s: a b "[0-9]+" [tag];
  a: '+' | ;
  b: '-' a | b '*' [rep];
}
`

func TestComputeFirsts(t *testing.T) {
	g := buildAnalyzed(t, firstFollowGrammar)

	a, _ := g.FindSymbol("a")
	b, _ := g.FindSymbol("b")
	s, _ := g.FindSymbol("s")

	if !g.Symbols()[a].nullable {
		t.Fatal("a must be nullable")
	}
	if g.Symbols()[b].nullable {
		t.Fatal("b must not be nullable")
	}
	if g.Symbols()[s].nullable {
		t.Fatal("s must not be nullable")
	}

	assertSameSet(t, symbolSet(t, g, "+"), g.Symbols()[a].firsts)
	assertSameSet(t, symbolSet(t, g, "-"), g.Symbols()[b].firsts)
	// a is nullable, so FIRST(s) also sees through to b.
	assertSameSet(t, symbolSet(t, g, "+", "-"), g.Symbols()[s].firsts)
}

func TestComputeFollows(t *testing.T) {
	g := buildAnalyzed(t, firstFollowGrammar)

	a, _ := g.FindSymbol("a")
	b, _ := g.FindSymbol("b")

	// a is followed by b's firsts (from s) and by everything
	// following b (a closes b's first production).
	wantA := symbolSet(t, g, "-", "*", "[0-9]+")
	assertSameSet(t, wantA, g.Symbols()[a].follows)

	// b is followed by the number terminal (tail in s) and by '*'
	// (its own recursion).
	wantB := symbolSet(t, g, "*", "[0-9]+")
	assertSameSet(t, wantB, g.Symbols()[b].follows)
}

func TestFollowOfStartIncludesEnd(t *testing.T) {
	g := buildAnalyzed(t, firstFollowGrammar)
	follows := g.Symbols()[g.StartSymbol()].follows
	if len(follows) != 1 || follows[0] != g.EndSymbol() {
		t.Fatalf("the start symbol must be followed by end of input only: %v", follows)
	}
}
