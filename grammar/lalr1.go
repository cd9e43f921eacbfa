package grammar

// lookahead carries, per item, the lookahead symbol bitset and the
// items the lookahead propagates to. Propagation targets are data,
// not structural links.
type lookahead struct {
	symbols     bitSet
	propagateTo []int
}

// generateLookaheads seeds the lookahead vector: one bitset per item,
// with end of input on the start item.
func (g *Grammar) generateLookaheads() {
	g.lookaheads = make([]lookahead, len(g.items))
	for i := range g.lookaheads {
		g.lookaheads[i].symbols = newBitSet(len(g.symbols))
	}
	iStartItem := g.states[0].items[0]
	g.lookaheads[iStartItem].symbols.set(g.iEnd)
}

// generateSpontaneousLookaheads writes, for every item with the dot
// before a non-terminal, the FIRSTs of the tail behind it into the
// dot-0 items of that non-terminal within the same state.
func (g *Grammar) generateSpontaneousLookaheads() {
	for iState := range g.states {
		for _, iItem := range g.states[iState].items {
			it := g.items[iItem]
			p := &g.productions[it.Prod]
			if it.Dot >= len(p.RHS) {
				continue
			}
			dotted := p.RHS[it.Dot]

			toIns, _ := g.firstOfTail(p, it.Dot+1, nil)

			for _, iProd := range g.symbols[dotted].productions {
				iTarget, ok := g.stateFindItem(iState, Item{Prod: iProd, Dot: 0})
				if !ok {
					continue
				}
				for _, f := range toIns {
					g.lookaheads[iTarget].symbols.set(f)
				}
			}
		}
	}
}

// generatePropagation records the propagation edges: each item whose
// dot advances over a shift transition propagates to the advanced
// item in the target state, and each item whose dot precedes a
// non-terminal with a nullable tail propagates to that non-terminal's
// dot-0 items in the same state.
func (g *Grammar) generatePropagation() {
	for iState := range g.states {
		for _, t := range g.transitions[iState] {
			for _, iItem := range g.states[iState].items {
				it := g.items[iItem]
				p := &g.productions[it.Prod]
				if len(p.RHS) == 0 || it.Dot >= len(p.RHS) || p.RHS[it.Dot] != t.Symbol {
					continue
				}
				iTarget, ok := g.stateFindItem(t.Target, Item{Prod: it.Prod, Dot: it.Dot + 1})
				if !ok {
					continue
				}
				la := &g.lookaheads[iItem]
				la.propagateTo, _ = appendUniqueInt(la.propagateTo, iTarget)
			}
		}

		for _, iItem := range g.states[iState].items {
			it := g.items[iItem]
			p := &g.productions[it.Prod]
			if it.Dot >= len(p.RHS) || !g.isNullableAfter(p, it.Dot+1) {
				continue
			}
			for _, iProd := range g.symbols[p.RHS[it.Dot]].productions {
				iTarget, ok := g.stateFindItem(iState, Item{Prod: iProd, Dot: 0})
				if !ok {
					continue
				}
				la := &g.lookaheads[iItem]
				la.propagateTo, _ = appendUniqueInt(la.propagateTo, iTarget)
			}
		}
	}
}

// propagateLookaheads runs the propagation worklist to fixpoint. Each
// step only ORs bits in, so the loop terminates.
func (g *Grammar) propagateLookaheads() {
	frontier := make([]int, len(g.lookaheads))
	for i := range frontier {
		frontier[i] = i
	}
	for len(frontier) > 0 {
		var next []int
		for _, iItem := range frontier {
			for _, iTarget := range g.lookaheads[iItem].propagateTo {
				if g.lookaheads[iTarget].symbols.or(g.lookaheads[iItem].symbols) {
					next = append(next, iTarget)
				}
			}
		}
		frontier = next
	}
}
