package grammar

import (
	"strconv"
	"strings"
)

// state is an ordered, duplicate-free list of item indices. Two
// states with the same item sequence are the same state.
type state struct {
	items []int
}

func (s *state) key() string {
	var b strings.Builder
	for i, it := range s.items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(it))
	}
	return b.String()
}

func (g *Grammar) stateFindItem(iState int, it Item) (int, bool) {
	iItem, ok := g.findItem(it)
	if !ok {
		return 0, false
	}
	for _, i := range g.states[iState].items {
		if i == iItem {
			return iItem, true
		}
	}
	return 0, false
}

// generateStates builds the canonical LR(0) state set breadth first,
// recording one shift transition per successful goto. Closures are
// applied to the start state up front and to every state after the
// walk.
func (g *Grammar) generateStates() {
	iStartItem := g.internItem(Item{Prod: g.symbols[g.iStart].productions[0], Dot: 0})
	g.states = append(g.states, state{items: []int{iStartItem}})
	g.transitions = append(g.transitions, nil)
	g.closeState(0)

	stateIndex := map[string]int{g.states[0].key(): 0}

	frontier := []int{0}
	for len(frontier) > 0 {
		var next []int
		for _, iState := range frontier {
			for iSymbol := range g.symbols {
				if iSymbol == g.iEnd {
					continue
				}
				items := g.createGotoState(iState, iSymbol)
				if len(items) == 0 {
					continue
				}

				gotoState := state{items: items}
				iGoto, known := stateIndex[gotoState.key()]
				if !known {
					iGoto = len(g.states)
					g.states = append(g.states, gotoState)
					g.transitions = append(g.transitions, nil)
					stateIndex[gotoState.key()] = iGoto
					next = append(next, iGoto)
				}

				g.transitions[iState] = append(g.transitions[iState], Transition{
					Symbol: iSymbol,
					Target: iGoto,
					Kind:   TransitionShift,
				})
			}
		}
		frontier = next
	}

	for iState := range g.states {
		g.closeState(iState)
	}
}

// createGotoState collects the items reached from iState on iSymbol:
// items whose dot advances over the symbol, plus the dot-1 items of
// every production reachable from a dotted symbol whose right-hand
// side begins with it.
func (g *Grammar) createGotoState(iState, iSymbol int) []int {
	var items []int
	for _, iItem := range g.states[iState].items {
		it := g.items[iItem]
		p := &g.productions[it.Prod]
		if it.Dot >= len(p.RHS) {
			continue
		}
		next := p.RHS[it.Dot]

		if next == iSymbol {
			items, _ = appendUniqueInt(items, g.internItem(Item{Prod: it.Prod, Dot: it.Dot + 1}))
		}

		for _, iProd := range g.symbols[next].prodsByFirstSym {
			if g.productions[iProd].RHS[0] == iSymbol {
				items, _ = appendUniqueInt(items, g.internItem(Item{Prod: iProd, Dot: 1}))
			}
		}
	}
	return items
}

// closeState adds, for every item whose dot sits before a
// non-terminal, the dot-0 items of that non-terminal's productions,
// until the state stops growing.
func (g *Grammar) closeState(iState int) {
	s := &g.states[iState]
	for idx := 0; idx < len(s.items); idx++ {
		it := g.items[s.items[idx]]
		dotted := g.dottedSymbol(it)
		if dotted < 0 {
			continue
		}
		for _, iProd := range g.symbols[dotted].productions {
			s.items, _ = appendUniqueInt(s.items, g.internItem(Item{Prod: iProd, Dot: 0}))
		}
	}
}

// NumStates returns the number of states.
func (g *Grammar) NumStates() int {
	return len(g.states)
}

// StateItems returns the item indices of state i. Callers must treat
// the slice as read-only.
func (g *Grammar) StateItems(i int) []int {
	return g.states[i].items
}

// DescribeState renders every item of state i, one per line.
func (g *Grammar) DescribeState(i int) string {
	var b strings.Builder
	for _, iItem := range g.states[i].items {
		b.WriteString("| ")
		b.WriteString(g.DescribeItem(iItem))
		b.WriteByte('\n')
	}
	return b.String()
}
