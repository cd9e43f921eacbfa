package grammar

import (
	"fmt"

	verr "github.com/parlr-dev/parlr/error"
)

// optimize removes redundant aliases to fixpoint: a non-terminal with
// a single production whose right-hand side is one terminal and whose
// action is empty only renames that terminal, so every reference to
// it is rewritten to the terminal itself.
func (g *Grammar) optimize() error {
	for {
		removed, err := g.removeOneRedundantAlias()
		if err != nil {
			return err
		}
		if !removed {
			return nil
		}
	}
}

func (g *Grammar) removeOneRedundantAlias() (bool, error) {
	for i := range g.symbols {
		if g.isReservedSymbol(i) {
			continue
		}
		s := &g.symbols[i]
		if len(s.productions) != 1 {
			continue
		}
		iProd := s.productions[0]
		p := &g.productions[iProd]
		if len(p.RHS) != 1 || p.Action != "" {
			continue
		}
		iTerm := p.RHS[0]
		if g.symbols[iTerm].Kind != SymbolKindTerminal {
			continue
		}

		if err := g.replaceAndRemoveSymbol(i, iTerm, iProd); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// replaceAndRemoveSymbol removes production iProd, substitutes every
// reference to the replaced symbol with the replacement, and compacts
// the symbol vector. Precedence and associativity transfer to the
// replacement; both sides declaring either is an error.
func (g *Grammar) replaceAndRemoveSymbol(replaced, replacement, iProd int) error {
	rs := &g.symbols[replaced]
	ts := &g.symbols[replacement]

	if rs.Prec != 0 && ts.Prec != 0 || rs.Assoc != AssocNone && ts.Assoc != AssocNone {
		return &verr.SpecError{
			Cause:  semErrAliasingConflict,
			Detail: fmt.Sprintf("%v aliases %v", g.describeSymbol(replaced), g.describeSymbol(replacement)),
			Source: g.source,
			Offset: -1,
		}
	}
	if rs.Prec != 0 {
		ts.Prec = rs.Prec
	}
	if rs.Assoc != AssocNone {
		ts.Assoc = rs.Assoc
	}

	g.removeProduction(iProd)

	replaceRef := func(i int) int {
		if i == replaced {
			i = replacement
		}
		if i > replaced {
			i--
		}
		return i
	}
	for pi := range g.productions {
		p := &g.productions[pi]
		p.LHS = replaceRef(p.LHS)
		for ri := range p.RHS {
			p.RHS[ri] = replaceRef(p.RHS[ri])
		}
		if p.PrecSym != noPrecSym {
			p.PrecSym = replaceRef(p.PrecSym)
		}
	}

	g.symbols = append(g.symbols[:replaced], g.symbols[replaced+1:]...)
	return nil
}

// removeProduction deletes production i and compacts every production
// index held by the symbols.
func (g *Grammar) removeProduction(i int) {
	g.productions = append(g.productions[:i], g.productions[i+1:]...)
	for si := range g.symbols {
		prods := g.symbols[si].productions
		out := prods[:0]
		for _, pi := range prods {
			if pi == i {
				continue
			}
			if pi > i {
				pi--
			}
			out = append(out, pi)
		}
		g.symbols[si].productions = out
	}
}
