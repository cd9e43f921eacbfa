package parser

import (
	"github.com/parlr-dev/parlr/grammar/lexical/ranges"
)

// charClass binds a bracket-expression class name to the characters
// it stands for. The set is ASCII only.
type charClass struct {
	name   string
	insert func(*ranges.Merged)
}

func insertLower(s *ranges.Merged) {
	s.Insert(ranges.Range{Begin: 'a', End: 'z' + 1})
}

func insertUpper(s *ranges.Merged) {
	s.Insert(ranges.Range{Begin: 'A', End: 'Z' + 1})
}

func insertDigit(s *ranges.Merged) {
	s.Insert(ranges.Range{Begin: '0', End: '9' + 1})
}

func insertAlpha(s *ranges.Merged) {
	insertLower(s)
	insertUpper(s)
}

func insertAlnum(s *ranges.Merged) {
	insertAlpha(s)
	insertDigit(s)
}

// charClasses is ordered the way class names are probed inside a
// bracket expression.
var charClasses = []charClass{
	{name: "[:alnum:]", insert: insertAlnum},
	{name: "[:word:]", insert: func(s *ranges.Merged) {
		insertAlnum(s)
		s.InsertChar('_')
	}},
	{name: "[:alpha:]", insert: insertAlpha},
	{name: "[:blank:]", insert: func(s *ranges.Merged) {
		s.InsertString(" \t")
	}},
	{name: "[:cntrl:]", insert: func(s *ranges.Merged) {
		s.Insert(ranges.Range{Begin: 0x01, End: 0x20})
		s.Insert(ranges.Range{Begin: 0x7f, End: 0x80})
	}},
	{name: "[:digit:]", insert: insertDigit},
	{name: "[:graph:]", insert: func(s *ranges.Merged) {
		s.Insert(ranges.Range{Begin: 0x21, End: 0x7f})
	}},
	{name: "[:lower:]", insert: insertLower},
	{name: "[:print:]", insert: func(s *ranges.Merged) {
		s.Insert(ranges.Range{Begin: 0x20, End: 0x7f})
	}},
	{name: "[:punct:]", insert: func(s *ranges.Merged) {
		s.InsertString("-!\"#$%&'()*+,./:;<=>?@[\\]_`{|}~")
	}},
	{name: "[:space:]", insert: func(s *ranges.Merged) {
		s.InsertString(" \t\r\n")
	}},
	{name: "[:upper:]", insert: insertUpper},
	{name: "[:xdigit:]", insert: func(s *ranges.Merged) {
		s.InsertString("0123456789abcdefABCDEF")
	}},
}
