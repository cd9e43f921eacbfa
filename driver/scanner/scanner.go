// Package scanner runs a compiled scanner automaton over input text.
package scanner

import (
	"github.com/parlr-dev/parlr/grammar/lexical/dfa"
)

type Scanner struct {
	d *dfa.DFA
}

func New(d *dfa.DFA) *Scanner {
	return &Scanner{
		d: d,
	}
}

// Result is one recognized token: the consumed slice of the input and
// the token id of the winning pattern.
type Result struct {
	Lexeme string
	Token  int
}

// Scan matches one token starting at offset. The automaton is stepped
// greedily; when no outgoing transition applies, the match succeeds
// iff the current state accepts. Consumed characters are never given
// back, so a shorter accepted prefix passed on the way is not returned.
// Byte zero stands for end of input and never matches a transition.
func (s *Scanner) Scan(input string, offset int) (Result, bool) {
	if len(s.d.States) == 0 {
		return Result{}, false
	}
	v := input[offset:]
	state := 0
	consumed := 0
	for {
		var c byte
		if consumed < len(v) {
			c = v[consumed]
		}

		next, ok := s.step(state, c)
		if !ok {
			st := s.d.States[state]
			if !st.Accepting {
				return Result{}, false
			}
			return Result{Lexeme: v[:consumed], Token: st.Token}, true
		}
		state = next
		consumed++
	}
}

func (s *Scanner) step(state int, c byte) (int, bool) {
	trans := s.d.Transitions
	for i := s.d.States[state].TransitionsBegin; i < len(trans) && trans[i].From == state; i++ {
		if trans[i].Begin <= c && c < trans[i].End {
			return trans[i].Next, true
		}
	}
	return 0, false
}
