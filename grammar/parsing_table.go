package grammar

import (
	"fmt"

	verr "github.com/parlr-dev/parlr/error"
)

type TransitionKind int

const (
	TransitionShift TransitionKind = iota
	TransitionReduce
)

func (k TransitionKind) String() string {
	if k == TransitionReduce {
		return "reduce"
	}
	return "shift"
}

// Transition moves the parser on Symbol. A shift targets a state; a
// reduce targets a production. After conflict resolution a state has
// at most one transition per symbol.
type Transition struct {
	Symbol int
	Target int
	Kind   TransitionKind
}

// StateTransitions returns the transitions of state i. Callers must
// treat the slice as read-only.
func (g *Grammar) StateTransitions(i int) []Transition {
	return g.transitions[i]
}

// generateTransitions adds a reduce transition for every reducible
// item and every symbol in its lookahead, resolving collisions with
// the precedence and associativity declarations.
func (g *Grammar) generateTransitions() error {
	for iState := range g.states {
		for _, iItem := range g.states[iState].items {
			it := g.items[iItem]
			if !g.reducible(it) {
				continue
			}
			la := &g.lookaheads[iItem]
			for iSym := range g.symbols {
				if !la.symbols.get(iSym) {
					continue
				}
				if err := g.insertReduceTransition(iState, iSym, it.Prod); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (g *Grammar) insertReduceTransition(iState, iSym, iProd int) error {
	trans := g.transitions[iState]
	for i := range trans {
		if trans[i].Symbol != iSym {
			continue
		}
		if trans[i].Kind == TransitionShift {
			return g.resolveShiftReduce(&trans[i], iState, iSym, iProd)
		}
		return g.resolveReduceReduce(&trans[i], iState, iSym, iProd)
	}
	g.transitions[iState] = append(trans, Transition{
		Symbol: iSym,
		Target: iProd,
		Kind:   TransitionReduce,
	})
	return nil
}

// resolveShiftReduce applies the declared precedences: an undeclared
// side, or equal precedence with no associativity, is a fatal
// conflict; a stronger production, or equal precedence with right
// associativity, turns the shift into the reduce; otherwise the shift
// stays.
func (g *Grammar) resolveShiftReduce(t *Transition, iState, iSym, iProd int) error {
	prodPrec := g.productionPrecedence(iProd)
	sym := &g.symbols[iSym]

	if prodPrec == 0 || sym.Prec == 0 || prodPrec == sym.Prec && sym.Assoc == AssocNone {
		return g.conflictErr(semErrShiftReduce, iState, iSym, iProd)
	}
	if prodPrec > sym.Prec || prodPrec == sym.Prec && sym.Assoc == AssocRight {
		t.Kind = TransitionReduce
		t.Target = iProd
	}
	return nil
}

// resolveReduceReduce keeps the higher-precedence production; an
// undeclared or equal precedence is a fatal conflict.
func (g *Grammar) resolveReduceReduce(t *Transition, iState, iSym, iProd int) error {
	newPrec := g.productionPrecedence(iProd)
	oldPrec := g.productionPrecedence(t.Target)

	if newPrec == 0 || oldPrec == 0 || newPrec == oldPrec {
		return g.conflictErr(semErrReduceReduce, iState, iSym, iProd)
	}
	if newPrec > oldPrec {
		t.Target = iProd
	}
	return nil
}

func (g *Grammar) conflictErr(cause error, iState, iSym, iProd int) error {
	return &verr.SpecError{
		Cause: cause,
		Detail: fmt.Sprintf("state %v, on %v, reducing %q",
			iState, g.describeSymbol(iSym), g.DescribeProduction(iProd)),
		Source: g.source,
		Offset: -1,
	}
}
