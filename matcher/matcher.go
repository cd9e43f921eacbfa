// Package matcher provides the cursor the grammar and regex parsers
// read their source through. Every compound operation is atomic: it
// either consumes what it matched or leaves the cursor where it was.
package matcher

import (
	"errors"
	"strings"
)

var (
	ErrUnterminatedLiteral = errors.New("unterminated literal")
	ErrEmptyLiteral        = errors.New("empty literal")
	ErrUnterminatedRegex   = errors.New("unterminated regex")
	ErrEmptyRegex          = errors.New("empty regex")
)

type Matcher struct {
	src string
	pos int
}

func New(src string) *Matcher {
	return &Matcher{
		src: src,
	}
}

// Pos returns the byte offset of the cursor into the source.
func (m *Matcher) Pos() int {
	return m.pos
}

// Rest returns the unconsumed tail of the source.
func (m *Matcher) Rest() string {
	return m.src[m.pos:]
}

func (m *Matcher) Empty() bool {
	return m.pos >= len(m.src)
}

func (m *Matcher) Peek() (byte, bool) {
	if m.Empty() {
		return 0, false
	}
	return m.src[m.pos], true
}

func (m *Matcher) Advance(n int) {
	m.pos += n
	if m.pos > len(m.src) {
		m.pos = len(m.src)
	}
}

// Tentative is a checkpoint on the cursor. A tentative match that is
// not explicitly accepted restores the cursor when closed, whatever
// path left the enclosing block.
type Tentative struct {
	m        *Matcher
	mark     int
	accepted bool
}

func (m *Matcher) Tentative() *Tentative {
	return &Tentative{
		m:    m,
		mark: m.pos,
	}
}

func (t *Tentative) Accept() {
	t.accepted = true
}

// Close rolls the cursor back to the checkpoint unless the match was
// accepted. Intended as `defer t.Close()` right after the checkpoint.
func (t *Tentative) Close() {
	if !t.accepted {
		t.m.pos = t.mark
	}
}

// MatchAnyChar consumes and returns the next character, or 0 at the
// end of the source.
func (m *Matcher) MatchAnyChar() byte {
	c, ok := m.Peek()
	if !ok {
		return 0
	}
	m.pos++
	return c
}

func (m *Matcher) MatchChar(c byte) bool {
	n, ok := m.Peek()
	if !ok || n != c {
		return false
	}
	m.pos++
	return true
}

// MatchAnyCharIn consumes the next character if it occurs in set,
// returning it, or 0 without consuming.
func (m *Matcher) MatchAnyCharIn(set string) byte {
	c, ok := m.Peek()
	if !ok || strings.IndexByte(set, c) < 0 {
		return 0
	}
	m.pos++
	return c
}

// MatchAnyCharNotIn consumes the next character if it does not occur
// in set, returning it, or 0 without consuming.
func (m *Matcher) MatchAnyCharNotIn(set string) byte {
	c, ok := m.Peek()
	if !ok || strings.IndexByte(set, c) >= 0 {
		return 0
	}
	m.pos++
	return c
}

// MatchPossiblyEscapedCharNotIn consumes one character not in set. A
// backslash consumes the following character as well and decodes the
// usual control escapes; any other escaped character stands for
// itself.
func (m *Matcher) MatchPossiblyEscapedCharNotIn(set string) byte {
	t := m.Tentative()
	defer t.Close()
	c := m.MatchAnyCharNotIn(set)
	if c != '\\' {
		t.Accept()
		return c
	}
	e := m.MatchAnyChar()
	if e == 0 {
		return 0
	}
	t.Accept()
	return DecodeEscape(e)
}

// DecodeEscape translates the character following a backslash.
func DecodeEscape(c byte) byte {
	switch c {
	case 'b':
		return '\b'
	case 'n':
		return '\n'
	case 'f':
		return '\f'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	}
	return c
}

// MatchStr consumes s verbatim. On a partial match the cursor is
// restored.
func (m *Matcher) MatchStr(s string) bool {
	t := m.Tentative()
	defer t.Close()
	for i := 0; i < len(s); i++ {
		if !m.MatchChar(s[i]) {
			return false
		}
	}
	t.Accept()
	return true
}

func isIDStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIDChar(c byte) bool {
	return isIDStart(c) || c >= '0' && c <= '9'
}

// MatchID consumes an identifier and returns it, or "" without moving
// the cursor.
func (m *Matcher) MatchID() string {
	c, ok := m.Peek()
	if !ok || !isIDStart(c) {
		return ""
	}
	begin := m.pos
	m.pos++
	for {
		c, ok := m.Peek()
		if !ok || !isIDChar(c) {
			break
		}
		m.pos++
	}
	return m.src[begin:m.pos]
}

// MatchLiteral consumes a '…'-delimited literal and returns its body
// with escapes left intact. It returns "" with a nil error when the
// cursor is not at a literal.
func (m *Matcher) MatchLiteral() (string, error) {
	return m.matchQuoted('\'', ErrUnterminatedLiteral, ErrEmptyLiteral)
}

// MatchRegex consumes a "…"-delimited regex the same way.
func (m *Matcher) MatchRegex() (string, error) {
	return m.matchQuoted('"', ErrUnterminatedRegex, ErrEmptyRegex)
}

func (m *Matcher) matchQuoted(delim byte, errUnterminated, errEmpty error) (string, error) {
	t := m.Tentative()
	defer t.Close()
	if !m.MatchChar(delim) {
		return "", nil
	}
	begin := m.pos
	escaped := false
	for {
		c, ok := m.Peek()
		if !ok || c == '\n' || c == '\r' {
			return "", errUnterminated
		}
		m.pos++
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == delim {
			body := m.src[begin : m.pos-1]
			if body == "" {
				return "", errEmpty
			}
			t.Accept()
			return body, nil
		}
	}
}

func (m *Matcher) matchLineComment() bool {
	if !m.MatchStr("//") {
		return false
	}
	for {
		c, ok := m.Peek()
		if !ok || c == '\n' || c == '\r' {
			break
		}
		m.pos++
	}
	return true
}

func (m *Matcher) matchBlockComment() bool {
	if !m.MatchStr("/*") {
		return false
	}
	for !m.Empty() {
		if m.MatchStr("*/") {
			break
		}
		m.pos++
	}
	return true
}

// MatchWhitespaceOrComments consumes any run of whitespace, line
// comments, and block comments, reporting whether anything was
// consumed.
func (m *Matcher) MatchWhitespaceOrComments() bool {
	matched := false
	for {
		switch {
		case m.MatchAnyCharIn(" \f\n\r\t\v") != 0:
		case m.matchLineComment():
		case m.matchBlockComment():
		default:
			return matched
		}
		matched = true
	}
}
