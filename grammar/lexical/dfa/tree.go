// Package dfa builds the scanner automaton from a parsed pattern tree
// using the direct (followpos) construction.
package dfa

import (
	"github.com/parlr-dev/parlr/grammar/lexical/parser"
)

// attrs holds the followpos attributes of every tree node. The
// position sets reference nodes by arena id.
type attrs struct {
	nullable []bool
	firsts   [][]parser.NodeID
	lasts    [][]parser.NodeID
	follows  [][]parser.NodeID
}

func computeAttrs(t *parser.Tree) *attrs {
	a := &attrs{
		nullable: make([]bool, len(t.Nodes)),
		firsts:   make([][]parser.NodeID, len(t.Nodes)),
		lasts:    make([][]parser.NodeID, len(t.Nodes)),
		follows:  make([][]parser.NodeID, len(t.Nodes)),
	}
	if t.Root != parser.NodeNil {
		a.compute(t, t.Root)
	}
	return a
}

// compute fills nullable, firsts, lasts, and follows bottom up. The
// follow sets are augmented while unwinding: concatenation links the
// left side's lasts to the right side's firsts, and a repetition
// links its own lasts back to its firsts.
func (a *attrs) compute(t *parser.Tree, id parser.NodeID) {
	n := t.Nodes[id]
	if n.Left != parser.NodeNil {
		a.compute(t, n.Left)
	}
	if n.Right != parser.NodeNil {
		a.compute(t, n.Right)
	}

	switch n.Kind {
	case parser.KindOr:
		a.nullable[id] = a.nullable[n.Left] || a.nullable[n.Right]
		a.firsts[id] = appendUnique(a.firsts[id], a.firsts[n.Left]...)
		a.firsts[id] = appendUnique(a.firsts[id], a.firsts[n.Right]...)
		a.lasts[id] = appendUnique(a.lasts[id], a.lasts[n.Left]...)
		a.lasts[id] = appendUnique(a.lasts[id], a.lasts[n.Right]...)
	case parser.KindAnd:
		a.nullable[id] = a.nullable[n.Left] && a.nullable[n.Right]
		a.firsts[id] = appendUnique(a.firsts[id], a.firsts[n.Left]...)
		if a.nullable[n.Left] {
			a.firsts[id] = appendUnique(a.firsts[id], a.firsts[n.Right]...)
		}
		a.lasts[id] = appendUnique(a.lasts[id], a.lasts[n.Right]...)
		if a.nullable[n.Right] {
			a.lasts[id] = appendUnique(a.lasts[id], a.lasts[n.Left]...)
		}
		for _, l := range a.lasts[n.Left] {
			a.follows[l] = appendUnique(a.follows[l], a.firsts[n.Right]...)
		}
	case parser.KindOpt:
		a.nullable[id] = true
		a.firsts[id] = appendUnique(a.firsts[id], a.firsts[n.Left]...)
		a.lasts[id] = appendUnique(a.lasts[id], a.lasts[n.Left]...)
	case parser.KindMany, parser.KindNonzero:
		if n.Kind == parser.KindMany {
			a.nullable[id] = true
		} else {
			a.nullable[id] = a.nullable[n.Left]
		}
		a.firsts[id] = appendUnique(a.firsts[id], a.firsts[n.Left]...)
		a.lasts[id] = appendUnique(a.lasts[id], a.lasts[n.Left]...)
		for _, l := range a.lasts[id] {
			kind := t.Nodes[l].Kind
			if kind == parser.KindChar || kind == parser.KindToken {
				a.follows[l] = appendUnique(a.follows[l], a.firsts[id]...)
			}
		}
	case parser.KindChar:
		a.nullable[id] = n.Begin == n.End
		a.firsts[id] = []parser.NodeID{id}
		a.lasts[id] = []parser.NodeID{id}
	case parser.KindToken:
		a.nullable[id] = true
		a.firsts[id] = []parser.NodeID{id}
		a.lasts[id] = []parser.NodeID{id}
	}
}

func appendUnique(dst []parser.NodeID, ids ...parser.NodeID) []parser.NodeID {
	for _, id := range ids {
		found := false
		for _, d := range dst {
			if d == id {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, id)
		}
	}
	return dst
}
