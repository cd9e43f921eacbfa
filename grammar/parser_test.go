package grammar

import (
	"errors"
	"testing"

	"github.com/parlr-dev/parlr/matcher"
)

func TestParseSymbolsAndProductions(t *testing.T) {
	g, err := Compile(`
g {
  pair: key '=' "[0-9]+" | error ';' ;
  key: key '.' part | part;
  part: "[a-z]+" [part];
}
`)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := g.FindSymbol("pair"); !ok {
		t.Fatal("non-terminal pair not registered")
	}
	if _, ok := g.FindSymbol("="); !ok {
		t.Fatal("literal terminal = not registered")
	}
	if _, ok := g.FindSymbol("[0-9]+"); !ok {
		t.Fatal("regex terminal not registered")
	}

	prods := g.Productions()
	// .start plus five declared alternatives.
	if len(prods) != 6 {
		t.Fatalf("unexpected production count: want: 6, got: %v", len(prods))
	}
	if prods[2].RHS[0] != g.ErrorSymbol() {
		t.Fatalf("the error keyword must resolve to the error symbol")
	}
	if prods[5].Action != "part" {
		t.Fatalf("unexpected action: want: part, got: %q", prods[5].Action)
	}
}

func TestParseDeduplicatesSymbols(t *testing.T) {
	g, err := Compile(`
g {
  s: s '+' a | a;
  a: "[0-9]+" '+' "[0-9]+" [pair];
}
`)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, s := range g.Symbols() {
		if s.Name == "+" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("identical literals must share one symbol: got %v", count)
	}
}

func TestParseExplicitPrecedence(t *testing.T) {
	g, err := Compile(`
g {
  %left '-';
  %left '*';
  e: e '-' e %precedence '*' | "[0-9]+";
}
`)
	if err != nil {
		t.Fatal(err)
	}

	star, _ := g.FindSymbol("*")
	var found bool
	for i := range g.Productions() {
		p := &g.Productions()[i]
		if len(p.RHS) == 3 {
			found = true
			if p.PrecSym != star {
				t.Fatalf("explicit %%precedence must bind the production to *")
			}
			if g.ProductionPrecedence(i) != g.Symbols()[star].Prec {
				t.Fatalf("production precedence must come from *")
			}
		}
	}
	if !found {
		t.Fatal("three-symbol production not found")
	}
}

func TestParseWhitespaceStatement(t *testing.T) {
	g, err := Compile(`
g {
  %whitespace "[ \t]*" "//[^\n]*";
  s: "[a-z]+";
}
`)
	if err != nil {
		t.Fatal(err)
	}
	ws := g.WhitespacePatterns()
	if len(ws) != 2 || ws[0] != `[ \t]*` || ws[1] != `//[^\n]*` {
		t.Fatalf("unexpected whitespace patterns: %#v", ws)
	}
}

func TestParseComments(t *testing.T) {
	_, err := Compile(`
// a line comment
g { /* block
comment */
  s: "[a-z]+"; // trailing
}
`)
	if err != nil {
		t.Fatal(err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		want    error
	}{
		{
			caption: "missing grammar name",
			src:     `{ s: "[a-z]+"; }`,
			want:    synErrUnmatchedName,
		},
		{
			caption: "missing body",
			src:     `g`,
			want:    synErrEmptyGrammar,
		},
		{
			caption: "no productions",
			src:     `g { }`,
			want:    synErrEmptyGrammar,
		},
		{
			caption: "unterminated associativity statement",
			src:     `g { %left '+' s: "[a-z]+"; }`,
			want:    synErrUnterminatedAssoc,
		},
		{
			caption: "unterminated whitespace statement",
			src:     `g { %whitespace "[ ]*" s: "[a-z]+"; }`,
			want:    synErrUnterminatedWS,
		},
		{
			caption: "unterminated production statement",
			src:     `g { s: "[a-z]+" }`,
			want:    synErrUnterminatedProd,
		},
		{
			caption: "missing action identifier",
			src:     `g { s: "[a-z]+" []; }`,
			want:    synErrMissingActionID,
		},
		{
			caption: "missing action close",
			src:     `g { s: "[a-z]+" [tag; }`,
			want:    synErrMissingActionEnd,
		},
		{
			caption: "missing precedence symbol",
			src:     `g { s: "[a-z]+" %precedence ; }`,
			want:    synErrMissingPrecSym,
		},
		{
			caption: "unfinished grammar body",
			src:     `g { s: "[a-z]+";`,
			want:    synErrUnfinishedGrammar,
		},
		{
			caption: "trailing garbage",
			src:     `g { s: "[a-z]+"; } x`,
			want:    synErrTrailingGarbage,
		},
		{
			caption: "unterminated literal",
			src:     `g { s: 'x; }`,
			want:    matcher.ErrUnterminatedLiteral,
		},
		{
			caption: "empty regex",
			src:     `g { s: ""; }`,
			want:    matcher.ErrEmptyRegex,
		},
		{
			caption: "undefined non-terminal",
			src:     `g { s: t; }`,
			want:    semErrUndefinedSym,
		},
		{
			caption: "unreferenced symbol",
			src:     `g { %left '+'; s: "[a-z]+"; }`,
			want:    semErrUnreferencedSym,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := Compile(tt.src)
			if err == nil {
				t.Fatal("compilation must fail")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("unexpected error: want: %v, got: %v", tt.want, err)
			}
		})
	}
}
