package grammar

import (
	"github.com/parlr-dev/parlr/spec"
)

// Report flattens the compiled tables into their serializable form.
func (g *Grammar) Report() *spec.Report {
	rep := &spec.Report{
		Name: g.Name,
	}

	for i := range g.symbols {
		s := &g.symbols[i]
		switch s.Kind {
		case SymbolKindTerminal:
			term := &spec.Terminal{
				Number:     i,
				Name:       s.Name,
				Literal:    s.Literal,
				Precedence: s.Prec,
			}
			switch s.Assoc {
			case AssocLeft:
				term.Associativity = "l"
			case AssocRight:
				term.Associativity = "r"
			}
			rep.Terminals = append(rep.Terminals, term)
		case SymbolKindNonTerminal:
			rep.NonTerminals = append(rep.NonTerminals, &spec.NonTerminal{
				Number: i,
				Name:   s.Name,
			})
		}
	}

	for i := range g.productions {
		p := &g.productions[i]
		rhs := make([]int, len(p.RHS))
		copy(rhs, p.RHS)
		rep.Productions = append(rep.Productions, &spec.Production{
			Number:     i,
			LHS:        p.LHS,
			RHS:        rhs,
			Precedence: g.productionPrecedence(i),
			Action:     p.Action,
			Text:       g.DescribeProduction(i),
		})
	}

	for i := range g.states {
		st := &spec.State{
			Number: i,
		}
		for _, iItem := range g.states[i].items {
			it := g.items[iItem]
			st.Items = append(st.Items, &spec.Item{
				Production: it.Prod,
				Dot:        it.Dot,
				Text:       g.DescribeItem(iItem),
			})
		}
		for _, t := range g.transitions[i] {
			st.Transitions = append(st.Transitions, &spec.Transition{
				Symbol: t.Symbol,
				Target: t.Target,
				Kind:   t.Kind.String(),
			})
		}
		rep.States = append(rep.States, st)
	}

	return rep
}
