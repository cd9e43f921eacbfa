package grammar

import (
	verr "github.com/parlr-dev/parlr/error"
	"github.com/parlr-dev/parlr/matcher"
)

// parse reads the grammar definition into symbols, productions,
// whitespace patterns, and precedence declarations. The statement
// matchers are atomic: a statement either parses fully or leaves the
// cursor where it started.
func (g *Grammar) parse(src string) error {
	m := matcher.New(src)

	m.MatchWhitespaceOrComments()
	name := m.MatchID()
	if name == "" {
		return g.specErr(m, synErrUnmatchedName)
	}
	g.Name = name

	m.MatchWhitespaceOrComments()
	if !m.MatchChar('{') {
		return g.specErr(m, synErrEmptyGrammar)
	}

	for {
		matched, err := g.parseAssocStatement(m)
		if err != nil {
			return err
		}
		if matched {
			continue
		}
		matched, err = g.parseWhitespaceStatement(m)
		if err != nil {
			return err
		}
		if matched {
			continue
		}
		matched, err = g.parseProductionStatement(m)
		if err != nil {
			return err
		}
		if !matched {
			break
		}
	}

	m.MatchWhitespaceOrComments()
	if !m.MatchChar('}') {
		return g.specErr(m, synErrUnfinishedGrammar)
	}
	m.MatchWhitespaceOrComments()
	if !m.Empty() {
		return g.specErr(m, synErrTrailingGarbage)
	}
	if len(g.productions) == 0 {
		return g.specErr(m, synErrEmptyGrammar)
	}

	return nil
}

// parseSymbol matches one symbol reference: the error keyword, a
// literal terminal, a regex terminal, or a non-terminal identifier.
// It returns -1 when nothing matches.
func (g *Grammar) parseSymbol(m *matcher.Matcher) (int, error) {
	m.MatchWhitespaceOrComments()

	if g.matchErrorKeyword(m) {
		return g.iError, nil
	}
	l, err := m.MatchLiteral()
	if err != nil {
		return -1, g.specErr(m, err)
	}
	if l != "" {
		return g.insertOrFindSymbol(l, SymbolKindTerminal, true), nil
	}
	r, err := m.MatchRegex()
	if err != nil {
		return -1, g.specErr(m, err)
	}
	if r != "" {
		return g.insertOrFindSymbol(r, SymbolKindTerminal, false), nil
	}
	if id := m.MatchID(); id != "" {
		return g.insertOrFindSymbol(id, SymbolKindNonTerminal, false), nil
	}

	return -1, nil
}

// matchErrorKeyword matches the bare word error, refusing identifiers
// it merely prefixes.
func (g *Grammar) matchErrorKeyword(m *matcher.Matcher) bool {
	t := m.Tentative()
	defer t.Close()
	if id := m.MatchID(); id != "error" {
		return false
	}
	t.Accept()
	return true
}

// parseAssocStatement matches `%none|%left|%right sym… ;`. Each
// statement claims the next precedence level and stamps the listed
// symbols with it.
func (g *Grammar) parseAssocStatement(m *matcher.Matcher) (bool, error) {
	t := m.Tentative()
	defer t.Close()

	m.MatchWhitespaceOrComments()

	var assoc AssocType
	switch {
	case m.MatchStr("%none"):
		assoc = AssocNone
	case m.MatchStr("%left"):
		assoc = AssocLeft
	case m.MatchStr("%right"):
		assoc = AssocRight
	default:
		return false, nil
	}

	g.currentPrec++
	for {
		i, err := g.parseSymbol(m)
		if err != nil {
			return false, err
		}
		if i < 0 {
			break
		}
		g.symbols[i].Assoc = assoc
		g.symbols[i].Prec = g.currentPrec
	}

	m.MatchWhitespaceOrComments()
	if !m.MatchChar(';') {
		return false, g.specErr(m, synErrUnterminatedAssoc)
	}

	t.Accept()
	return true, nil
}

// parseWhitespaceStatement matches `%whitespace regex… ;` and queues
// each regex as a whitespace pattern.
func (g *Grammar) parseWhitespaceStatement(m *matcher.Matcher) (bool, error) {
	t := m.Tentative()
	defer t.Close()

	m.MatchWhitespaceOrComments()
	if !m.MatchStr("%whitespace") {
		return false, nil
	}

	for {
		m.MatchWhitespaceOrComments()
		r, err := m.MatchRegex()
		if err != nil {
			return false, g.specErr(m, err)
		}
		if r == "" {
			break
		}
		g.whitespacePatterns = append(g.whitespacePatterns, r)
	}

	m.MatchWhitespaceOrComments()
	if !m.MatchChar(';') {
		return false, g.specErr(m, synErrUnterminatedWS)
	}

	t.Accept()
	return true, nil
}

// parseProductionStatement matches `id : alt (| alt)… ;`. The first
// left-hand side ever seen becomes the target of the synthetic start
// production.
func (g *Grammar) parseProductionStatement(m *matcher.Matcher) (bool, error) {
	t := m.Tentative()
	defer t.Close()

	m.MatchWhitespaceOrComments()
	lhsName := m.MatchID()
	if lhsName == "" {
		return false, nil
	}
	iLhs := g.insertOrFindSymbol(lhsName, SymbolKindNonTerminal, false)

	if len(g.productions) == 0 {
		g.addProduction(g.iStart, []int{iLhs}, noPrecSym, "")
	}

	m.MatchWhitespaceOrComments()
	if !m.MatchChar(':') {
		return false, nil
	}

	for {
		if err := g.parseAlternative(m, iLhs); err != nil {
			return false, err
		}
		m.MatchWhitespaceOrComments()
		if !m.MatchChar('|') {
			break
		}
	}

	m.MatchWhitespaceOrComments()
	if !m.MatchChar(';') {
		return false, g.specErr(m, synErrUnterminatedProd)
	}

	t.Accept()
	return true, nil
}

// parseAlternative matches one possibly empty right-hand side with
// its optional %precedence clause and action tag.
func (g *Grammar) parseAlternative(m *matcher.Matcher, iLhs int) error {
	var rhs []int
	for {
		i, err := g.parseSymbol(m)
		if err != nil {
			return err
		}
		if i < 0 {
			break
		}
		rhs = append(rhs, i)
	}

	precSym := noPrecSym
	m.MatchWhitespaceOrComments()
	if m.MatchStr("%precedence") {
		i, err := g.parseSymbol(m)
		if err != nil {
			return err
		}
		if i < 0 {
			return g.specErr(m, synErrMissingPrecSym)
		}
		g.symbols[i].referredAsPrec = true
		precSym = i
	}

	action := ""
	m.MatchWhitespaceOrComments()
	if m.MatchChar('[') {
		m.MatchWhitespaceOrComments()
		action = m.MatchID()
		if action == "" {
			return g.specErr(m, synErrMissingActionID)
		}
		m.MatchWhitespaceOrComments()
		if !m.MatchChar(']') {
			return g.specErr(m, synErrMissingActionEnd)
		}
	}

	g.addProduction(iLhs, rhs, precSym, action)
	return nil
}

// specErr wraps cause with the source span the matcher currently
// points at.
func (g *Grammar) specErr(m *matcher.Matcher, cause error) error {
	return &verr.SpecError{
		Cause:  cause,
		Source: g.source,
		Offset: m.Pos(),
	}
}
