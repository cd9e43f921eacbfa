package dfa

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/parlr-dev/parlr/grammar/lexical/parser"
	"github.com/parlr-dev/parlr/grammar/lexical/ranges"
)

// ErrTokenNotRecognized reports a zero-width alphabet partition with
// no token attached: the pattern tree is inconsistent with its
// augmentation.
var ErrTokenNotRecognized = errors.New("token not recognized when chars not accepted")

// Transition moves the automaton from state From on any character in
// [Begin, End). A zero-width transition (Begin == End) never consumes
// input: its Next field carries the recognized token id instead of a
// state index.
type Transition struct {
	From  int
	Begin byte
	End   byte
	Next  int
}

// DState is one deterministic state. Its transitions are the
// contiguous run starting at TransitionsBegin in the transition list.
type DState struct {
	TransitionsBegin int
	Accepting        bool
	Token            int
}

type DFA struct {
	States      []DState
	Transitions []Transition
}

// Build runs the subset construction over the tree's leaf sets. A
// state is labeled by the ordered set of leaves that may match next;
// two labels with the same leaf sequence are the same state. When one
// state accepts for several patterns, the first pattern added wins.
func Build(t *parser.Tree) (*DFA, error) {
	if t.Root == parser.NodeNil {
		return &DFA{}, nil
	}
	a := computeAttrs(t)

	labels := [][]parser.NodeID{a.firsts[t.Root]}
	labelIndex := map[string]int{labelKey(labels[0]): 0}

	type acceptingPair struct {
		state int
		token int
	}
	var accepting []acceptingPair
	var trans []Transition

	for i := 0; i < len(labels); i++ {
		label := labels[i]

		var part ranges.Unmerged
		for _, leaf := range label {
			n := t.Nodes[leaf]
			part.Insert(ranges.Range{Begin: n.Begin, End: n.End})
		}

		var tokens []int
		for _, leaf := range label {
			if t.Nodes[leaf].Kind == parser.KindToken {
				tokens = append(tokens, t.Nodes[leaf].Token)
			}
		}

		var buildErr error
		part.Each(func(b, e byte) {
			if buildErr != nil {
				return
			}

			var next []parser.NodeID
			for _, leaf := range label {
				n := t.Nodes[leaf]
				if b >= n.Begin && e <= n.End && n.Begin != n.End {
					next = appendUnique(next, a.follows[leaf]...)
				}
			}

			if b == e {
				if len(tokens) == 0 {
					buildErr = ErrTokenNotRecognized
					return
				}
				trans = append(trans, Transition{From: i, Begin: b, End: e, Next: tokens[0]})
				return
			}

			iNext, ok := labelIndex[labelKey(next)]
			if !ok {
				iNext = len(labels)
				labels = append(labels, next)
				labelIndex[labelKey(next)] = iNext
			}
			trans = append(trans, Transition{From: i, Begin: b, End: e, Next: iNext})
		})
		if buildErr != nil {
			return nil, buildErr
		}

		if len(tokens) > 0 {
			accepting = append(accepting, acceptingPair{state: i, token: tokens[0]})
		}
	}

	d := &DFA{
		States:      make([]DState, len(labels)),
		Transitions: trans,
	}

	// Transitions were emitted in from-state order; a prefix sum over
	// the per-state counts places each state's run.
	counts := make([]int, len(labels))
	for _, tr := range trans {
		counts[tr.From]++
	}
	sum := 0
	for i := range d.States {
		d.States[i].TransitionsBegin = sum
		sum += counts[i]
	}

	for _, p := range accepting {
		if d.States[p.state].Accepting {
			continue
		}
		d.States[p.state].Accepting = true
		d.States[p.state].Token = p.token
	}

	return d, nil
}

func labelKey(label []parser.NodeID) string {
	var b strings.Builder
	for i, id := range label {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	return b.String()
}

// Describe renders the automaton one state per line, for debugging.
func (d *DFA) Describe() string {
	var b strings.Builder
	for i, s := range d.States {
		fmt.Fprintf(&b, "state %v", i)
		if s.Accepting {
			fmt.Fprintf(&b, " accepting token %v", s.Token)
		}
		b.WriteByte('\n')
		for j := s.TransitionsBegin; j < len(d.Transitions) && d.Transitions[j].From == i; j++ {
			tr := d.Transitions[j]
			fmt.Fprintf(&b, "  [%v,%v) -> %v\n", tr.Begin, tr.End, tr.Next)
		}
	}
	return b.String()
}
