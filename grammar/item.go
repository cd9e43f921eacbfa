package grammar

import (
	"strings"
)

// Item is a production with a dot position in its right-hand side.
// Items are interned: equal items share one index in the grammar's
// item vector.
type Item struct {
	Prod int
	Dot  int
}

func (g *Grammar) internItem(it Item) int {
	if i, ok := g.itemIndex[it]; ok {
		return i
	}
	i := len(g.items)
	g.items = append(g.items, it)
	g.itemIndex[it] = i
	return i
}

func (g *Grammar) findItem(it Item) (int, bool) {
	i, ok := g.itemIndex[it]
	return i, ok
}

// reducible reports whether the item's dot is at the end of its
// production.
func (g *Grammar) reducible(it Item) bool {
	return it.Dot == len(g.productions[it.Prod].RHS)
}

// dottedSymbol returns the symbol right of the dot, or -1 for a
// reducible item.
func (g *Grammar) dottedSymbol(it Item) int {
	p := &g.productions[it.Prod]
	if it.Dot >= len(p.RHS) {
		return -1
	}
	return p.RHS[it.Dot]
}

// Items exposes the interned item vector. Callers must treat it as
// read-only.
func (g *Grammar) Items() []Item {
	return g.items
}

// DescribeItem renders item i with the dot marking its position.
func (g *Grammar) DescribeItem(i int) string {
	it := g.items[i]
	p := &g.productions[it.Prod]
	var b strings.Builder
	b.WriteString(g.symbols[p.LHS].Name)
	b.WriteString(" :")
	for pos := 0; pos <= len(p.RHS); pos++ {
		if pos == it.Dot {
			b.WriteString(" .")
		}
		if pos < len(p.RHS) {
			b.WriteByte(' ')
			b.WriteString(g.symbols[p.RHS[pos]].Name)
		}
	}
	return b.String()
}
