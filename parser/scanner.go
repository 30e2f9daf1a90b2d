package parser

import (
	"github.com/readysetmark/wealth-pulse/ast"
)

// scanner threads an explicit cursor over the source buffer. Every grammar
// rule is a method on the scanner that either consumes input and returns a
// value, or returns an error leaving diagnostics at the failure position.
// Backtracking is explicit: callers take a mark and restore it when an
// alternative fails, so no rule ever partially commits.
type scanner struct {
	source   []byte // Source buffer
	filename string // Filename for error reporting
	pos      int    // Current byte position
	line     int    // Current line (1-indexed)
	column   int    // Current column (1-indexed)
}

func newScanner(source []byte, filename string) *scanner {
	return &scanner{
		source:   source,
		filename: filename,
		line:     1,
		column:   1,
	}
}

// mark captures the full cursor state so an alternative can be retried from
// the same position.
type mark struct {
	pos    int
	line   int
	column int
}

func (s *scanner) mark() mark {
	return mark{pos: s.pos, line: s.line, column: s.column}
}

func (s *scanner) restore(m mark) {
	s.pos = m.pos
	s.line = m.line
	s.column = m.column
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.source)
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.source) {
		return 0
	}
	return s.source[s.pos]
}

func (s *scanner) advance() byte {
	if s.pos >= len(s.source) {
		return 0
	}
	ch := s.source[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

func (s *scanner) position() ast.Position {
	return ast.Position{
		Filename: s.filename,
		Offset:   s.pos,
		Line:     s.line,
		Column:   s.column,
	}
}

// expect consumes a single literal character or fails.
func (s *scanner) expect(ch byte) error {
	if s.peek() != ch {
		return newStructuralErrorf(s.position(), "expected %q", string(ch))
	}
	s.advance()
	return nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// mandatoryWhitespace consumes one or more space/tab characters and fails if
// none are found.
func (s *scanner) mandatoryWhitespace() error {
	if !isSpace(s.peek()) {
		return newStructuralErrorf(s.position(), "expected whitespace")
	}
	for isSpace(s.peek()) {
		s.advance()
	}
	return nil
}

// optionalWhitespace consumes zero or more space/tab characters. It never
// fails; the return value distinguishes "found at least one" from "found
// none", which is semantically significant for amounts.
func (s *scanner) optionalWhitespace() bool {
	found := false
	for isSpace(s.peek()) {
		s.advance()
		found = true
	}
	return found
}

// fixedWidthInt consumes exactly width decimal digit characters and parses
// them as a non-negative integer. It fails if a non-digit is encountered
// within the window or the input ends early.
func (s *scanner) fixedWidthInt(width int) (int, error) {
	value := 0
	for i := 0; i < width; i++ {
		ch := s.peek()
		if !isDigit(ch) {
			return 0, newStructuralErrorf(s.position(), "expected %d digits", width)
		}
		value = value*10 + int(ch-'0')
		s.advance()
	}
	return value, nil
}
