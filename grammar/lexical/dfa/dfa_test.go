package dfa

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlr-dev/parlr/grammar/lexical/parser"
)

func build(t *testing.T, pats ...parser.Pattern) *DFA {
	t.Helper()
	tree, err := parser.ParsePatterns(pats)
	require.NoError(t, err)
	d, err := Build(tree)
	require.NoError(t, err)
	return d
}

// stateTransitions gathers the transitions of one state, including its
// zero-width token transition.
func stateTransitions(d *DFA, state int) []Transition {
	var out []Transition
	for i := d.States[state].TransitionsBegin; i < len(d.Transitions) && d.Transitions[i].From == state; i++ {
		out = append(out, d.Transitions[i])
	}
	return out
}

func TestBuildClassicExample(t *testing.T) {
	d := build(t, parser.Pattern{Expr: "(a|b)*abb", Token: 0})

	require.Len(t, d.States, 4)

	// State 0: a -> 1, b -> 0.
	assert.Equal(t, []Transition{
		{From: 0, Begin: 'a', End: 'b', Next: 1},
		{From: 0, Begin: 'b', End: 'c', Next: 0},
	}, stateTransitions(d, 0))

	// State 1: a -> 1, b -> 2.
	assert.Equal(t, []Transition{
		{From: 1, Begin: 'a', End: 'b', Next: 1},
		{From: 1, Begin: 'b', End: 'c', Next: 2},
	}, stateTransitions(d, 1))

	// State 2: a -> 1, b -> 3.
	assert.Equal(t, []Transition{
		{From: 2, Begin: 'a', End: 'b', Next: 1},
		{From: 2, Begin: 'b', End: 'c', Next: 3},
	}, stateTransitions(d, 2))

	// State 3 accepts and carries a zero-width transition with the
	// recognized token.
	require.True(t, d.States[3].Accepting)
	assert.Equal(t, 0, d.States[3].Token)
	assert.Equal(t, []Transition{
		{From: 3, Begin: 0, End: 0, Next: 0},
		{From: 3, Begin: 'a', End: 'b', Next: 1},
		{From: 3, Begin: 'b', End: 'c', Next: 0},
	}, stateTransitions(d, 3))

	// Only state 3 accepts.
	for i := 0; i < 3; i++ {
		assert.False(t, d.States[i].Accepting, "state %v", i)
	}
}

func TestBuildTransitionsBeginIsPrefixSum(t *testing.T) {
	d := build(t,
		parser.Pattern{Expr: "[0-9]+", Token: 0},
		parser.Pattern{Expr: "[a-z]+", Token: 1},
	)
	sum := 0
	for i, s := range d.States {
		assert.Equal(t, sum, s.TransitionsBegin, "state %v", i)
		sum += len(stateTransitions(d, i))
	}
	assert.Equal(t, len(d.Transitions), sum)
}

// For every state and every input character, at most one outgoing
// transition applies.
func TestBuildTransitionsAreDisjoint(t *testing.T) {
	d := build(t,
		parser.Pattern{Expr: `(\+|\-)?[0-9]+`, Token: 0},
		parser.Pattern{Expr: `(\+|\-)?[0-9]+(\.[0-9]+)?((e|E)(\+|\-)?[0-9]+)?`, Token: 1},
		parser.Pattern{Expr: "[^h]+", Token: 2},
	)
	for i := range d.States {
		for c := 1; c < 128; c++ {
			n := 0
			for _, tr := range stateTransitions(d, i) {
				if tr.Begin <= byte(c) && byte(c) < tr.End {
					n++
				}
			}
			assert.LessOrEqual(t, n, 1, "state %v char %v", i, c)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	pats := []parser.Pattern{
		{Expr: `(\+|\-)?[0-9]+`, Token: 0},
		{Expr: "[a-gi-me-j]", Token: 1},
		{Expr: "[ \t\r\n]*", Token: 2},
	}
	first := build(t, pats...)
	second := build(t, pats...)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("building the same patterns twice produced different automata")
	}
}

func TestBuildEarlierPatternWinsTies(t *testing.T) {
	d := build(t,
		parser.Pattern{Expr: "[0-9]+", Token: 0},
		parser.Pattern{Expr: "[0-9]+", Token: 1},
	)
	found := false
	for _, s := range d.States {
		if s.Accepting {
			found = true
			assert.Equal(t, 0, s.Token)
		}
	}
	assert.True(t, found)
}

func TestBuildNullablePatternAcceptsAtStart(t *testing.T) {
	d := build(t, parser.Pattern{Expr: "[ \t]*", Token: 7})
	require.True(t, d.States[0].Accepting)
	assert.Equal(t, 7, d.States[0].Token)
}
