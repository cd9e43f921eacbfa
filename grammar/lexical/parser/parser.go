package parser

import (
	"errors"

	"github.com/parlr-dev/parlr/grammar/lexical/ranges"
	"github.com/parlr-dev/parlr/matcher"
)

// ErrInvalidPattern reports a pattern the regex dialect cannot parse.
var ErrInvalidPattern = errors.New("invalid regular expression")

// Pattern is one entry of a composite scanner: the pattern source and
// the token id its matches yield. A literal pattern matches its text
// verbatim instead of being interpreted as a regex.
type Pattern struct {
	Expr    string
	Token   int
	Literal bool
}

// ParsePatterns compiles the patterns into one combined tree: each
// pattern is augmented with a trailing token node carrying its token
// id, and the augmented patterns are joined by or nodes. Earlier
// patterns come first in the tree, which makes them win ties
// downstream.
func ParsePatterns(pats []Pattern) (*Tree, error) {
	t := &Tree{Root: NodeNil}
	for _, pat := range pats {
		var n NodeID
		if pat.Literal {
			n = parseLiteral(t, pat.Expr)
		} else {
			var err error
			n, err = parsePattern(t, pat.Expr)
			if err != nil {
				return nil, err
			}
		}
		n = t.and(n, t.token(pat.Token))
		t.Root = t.or(t.Root, n)
	}
	return t, nil
}

// parseLiteral builds the concatenation matching text verbatim,
// decoding backslash escapes.
func parseLiteral(t *Tree, text string) NodeID {
	chain := NodeNil
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) {
			i++
			c = matcher.DecodeEscape(text[i])
		}
		chain = t.and(chain, t.char(c, c+1))
	}
	return chain
}

type parser struct {
	m *matcher.Matcher
	t *Tree
}

func parsePattern(t *Tree, expr string) (NodeID, error) {
	p := &parser{
		m: matcher.New(expr),
		t: t,
	}
	n := p.parseAlt()
	if n == NodeNil || !p.m.Empty() {
		return NodeNil, &PatternError{Cause: ErrInvalidPattern, Pattern: expr}
	}
	return n, nil
}

func (p *parser) parseAlt() NodeID {
	left := p.parseConcat()
	if left == NodeNil {
		return NodeNil
	}
	for {
		t := p.m.Tentative()
		if !p.m.MatchChar('|') {
			t.Close()
			break
		}
		right := p.parseConcat()
		if right == NodeNil {
			t.Close()
			break
		}
		t.Accept()
		left = p.t.or(left, right)
	}
	return left
}

func (p *parser) parseConcat() NodeID {
	left := p.parsePostfix()
	if left == NodeNil {
		return NodeNil
	}
	for {
		right := p.parsePostfix()
		if right == NodeNil {
			break
		}
		left = p.t.and(left, right)
	}
	return left
}

func (p *parser) parsePostfix() NodeID {
	n := p.parseBracket()
	if n == NodeNil {
		n = p.parseGroup()
	}
	if n == NodeNil {
		n = p.parseDot()
	}
	if n == NodeNil {
		n = p.parseChar()
	}
	if n == NodeNil {
		return NodeNil
	}
	switch p.m.MatchAnyCharIn("+?*") {
	case '+':
		n = p.t.wrap(KindNonzero, n)
	case '?':
		n = p.t.wrap(KindOpt, n)
	case '*':
		n = p.t.wrap(KindMany, n)
	}
	return n
}

func (p *parser) parseGroup() NodeID {
	t := p.m.Tentative()
	defer t.Close()
	if !p.m.MatchChar('(') {
		return NodeNil
	}
	n := p.parseAlt()
	if n == NodeNil || !p.m.MatchChar(')') {
		return NodeNil
	}
	t.Accept()
	return n
}

func (p *parser) parseDot() NodeID {
	if !p.m.MatchChar('.') {
		return NodeNil
	}
	return p.t.char(1, ranges.MaxChar)
}

func (p *parser) parseChar() NodeID {
	c := p.m.MatchPossiblyEscapedCharNotIn("|*+?()")
	if c == 0 {
		return NodeNil
	}
	return p.t.char(c, c+1)
}

func (p *parser) parseBracket() NodeID {
	t := p.m.Tentative()
	defer t.Close()
	if !p.m.MatchChar('[') {
		return NodeNil
	}
	negated := p.m.MatchChar('^')

	var set ranges.Merged
	if p.m.MatchChar('-') {
		set.InsertChar('-')
	}
	for {
		if p.matchClass(&set) {
			continue
		}
		b := p.m.MatchPossiblyEscapedCharNotIn("^]-")
		if b == 0 {
			break
		}
		if !p.matchCharRange(&set, b) {
			set.InsertChar(b)
		}
	}
	if p.m.MatchChar('-') {
		set.InsertChar('-')
	}
	if !p.m.MatchChar(']') {
		return NodeNil
	}
	if negated {
		set.Negate()
	}
	if set.Empty() {
		return NodeNil
	}

	res := NodeNil
	for _, r := range set.Ranges() {
		res = p.t.or(res, p.t.char(r.Begin, r.End))
	}
	t.Accept()
	return res
}

func (p *parser) matchClass(set *ranges.Merged) bool {
	for _, class := range charClasses {
		if p.m.MatchStr(class.name) {
			class.insert(set)
			return true
		}
	}
	return false
}

// matchCharRange completes b into the range b-e when a dash and an
// end character follow; the range includes both bounds.
func (p *parser) matchCharRange(set *ranges.Merged, b byte) bool {
	t := p.m.Tentative()
	defer t.Close()
	if !p.m.MatchChar('-') {
		return false
	}
	e := p.m.MatchPossiblyEscapedCharNotIn("^]-")
	if e == 0 {
		return false
	}
	set.Insert(ranges.Range{Begin: b, End: e + 1})
	t.Accept()
	return true
}
