package grammar

// computeFollows iterates FOLLOW sets to fixpoint. The start symbol
// is followed by end of input; each right-hand-side occurrence of a
// symbol is followed by the FIRSTs of its tail, and by the FOLLOWs of
// the producing symbol when the tail is nullable.
func (g *Grammar) computeFollows() {
	g.symbols[g.iStart].follows, _ = appendUniqueInt(g.symbols[g.iStart].follows, g.iEnd)

	for {
		changed := false
		for iProd := range g.productions {
			p := &g.productions[iProd]
			for pos, r := range p.RHS {
				s := &g.symbols[r]

				nonNullableFound := false
				for tail := pos + 1; tail < len(p.RHS) && !nonNullableFound; tail++ {
					ts := &g.symbols[p.RHS[tail]]
					for _, f := range ts.firsts {
						var added bool
						s.follows, added = appendUniqueInt(s.follows, f)
						changed = changed || added
					}
					nonNullableFound = !ts.nullable
				}

				if !nonNullableFound {
					for _, f := range g.symbols[p.LHS].follows {
						var added bool
						s.follows, added = appendUniqueInt(s.follows, f)
						changed = changed || added
					}
				}
			}
		}
		if !changed {
			return
		}
	}
}
