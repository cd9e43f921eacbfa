package grammar

import (
	verr "github.com/parlr-dev/parlr/error"
)

// check validates the parsed grammar: every non-terminal must be
// defined (or only named as a precedence bearer), and every declared
// symbol must be referenced somewhere.
func (g *Grammar) check() error {
	for i := range g.symbols {
		s := &g.symbols[i]
		if s.Kind == SymbolKindNonTerminal && len(s.productions) == 0 && !s.referredAsPrec {
			return &verr.SpecError{
				Cause:  semErrUndefinedSym,
				Detail: s.Name,
				Source: g.source,
				Offset: -1,
			}
		}
	}

	counts := make([]int, len(g.symbols))
	for i := range g.productions {
		p := &g.productions[i]
		for _, r := range p.RHS {
			counts[r]++
		}
		if p.PrecSym != noPrecSym {
			counts[p.PrecSym]++
		}
	}

	for i := range g.symbols {
		if g.isReservedSymbol(i) {
			continue
		}
		if counts[i] == 0 {
			return &verr.SpecError{
				Cause:  semErrUnreferencedSym,
				Detail: g.symbols[i].Name,
				Source: g.source,
				Offset: -1,
			}
		}
	}

	return nil
}
