package grammar

import (
	"strings"
)

// noPrecSym marks a production without a precedence-bearing symbol.
const noPrecSym = -1

// Production is one rewrite rule. LHS and RHS hold symbol indices;
// PrecSym is the index of the symbol the production's precedence is
// read from, or noPrecSym when it has none (no explicit %precedence
// and no terminal in RHS).
type Production struct {
	LHS     int
	RHS     []int
	PrecSym int
	Action  string
}

func (g *Grammar) addProduction(lhs int, rhs []int, precSym int, action string) int {
	g.productions = append(g.productions, Production{
		LHS:     lhs,
		RHS:     rhs,
		PrecSym: precSym,
		Action:  action,
	})
	i := len(g.productions) - 1
	g.symbols[lhs].productions = append(g.symbols[lhs].productions, i)
	return i
}

// productionPrecedence returns the production's precedence, or zero
// when it has no precedence-bearing symbol.
func (g *Grammar) productionPrecedence(i int) int {
	p := &g.productions[i]
	if p.PrecSym == noPrecSym {
		return 0
	}
	return g.symbols[p.PrecSym].Prec
}

// isNullableAfter reports whether every right-hand-side symbol of p
// from pos on is nullable. It is vacuously true past the end.
func (g *Grammar) isNullableAfter(p *Production, pos int) bool {
	for ; pos < len(p.RHS); pos++ {
		if !g.symbols[p.RHS[pos]].nullable {
			return false
		}
	}
	return true
}

// Productions exposes the production vector. Callers must treat it as
// read-only.
func (g *Grammar) Productions() []Production {
	return g.productions
}

// ProductionPrecedence returns the effective precedence of production
// i; zero means unset.
func (g *Grammar) ProductionPrecedence(i int) int {
	return g.productionPrecedence(i)
}

// DescribeProduction renders production i as "LHS : R1 R2 …".
func (g *Grammar) DescribeProduction(i int) string {
	p := &g.productions[i]
	var b strings.Builder
	b.WriteString(g.symbols[p.LHS].Name)
	b.WriteString(" :")
	for _, r := range p.RHS {
		b.WriteByte(' ')
		b.WriteString(g.symbols[r].Name)
	}
	return b.String()
}
