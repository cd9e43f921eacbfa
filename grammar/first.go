package grammar

// computeFirsts iterates nullability and FIRST sets to fixpoint. A
// terminal's FIRST is itself; a non-terminal's FIRST collects the
// FIRSTs of each production's leading symbols up to the first
// non-nullable one, and the non-terminal is nullable when some
// production has none.
func (g *Grammar) computeFirsts() {
	for {
		changed := false
		for i := range g.symbols {
			s := &g.symbols[i]
			if s.Kind != SymbolKindNonTerminal {
				var added bool
				s.firsts, added = appendUniqueInt(s.firsts, i)
				changed = changed || added
				continue
			}

			for _, iProd := range s.productions {
				p := &g.productions[iProd]
				nonNullableFound := false
				for _, r := range p.RHS {
					if nonNullableFound {
						break
					}
					for _, f := range g.symbols[r].firsts {
						var added bool
						s.firsts, added = appendUniqueInt(s.firsts, f)
						changed = changed || added
					}
					nonNullableFound = !g.symbols[r].nullable
				}
				if !nonNullableFound && !s.nullable {
					s.nullable = true
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// firstOfTail collects FIRST(rhs[pos:]) into dst, stopping at the
// first non-nullable symbol, and reports whether the whole tail is
// nullable.
func (g *Grammar) firstOfTail(p *Production, pos int, dst []int) ([]int, bool) {
	for ; pos < len(p.RHS); pos++ {
		s := &g.symbols[p.RHS[pos]]
		for _, f := range s.firsts {
			dst, _ = appendUniqueInt(dst, f)
		}
		if !s.nullable {
			return dst, false
		}
	}
	return dst, true
}
