package parser

import (
	"bytes"
	"strings"

	"github.com/readysetmark/wealth-pulse/ast"
)

// Grammar rules for the price database format. Each rule consumes from the
// scanner and builds one typed value. Alternatives are resolved by try-order
// with full backtracking, never by longest match: quoted symbols are tried
// before bare symbols, and symbol-then-quantity amounts before
// quantity-then-symbol.

// parseDate parses YYYY-MM-DD and validates that the triple names a real
// calendar date.
func (s *scanner) parseDate() (ast.Date, error) {
	pos := s.position()

	year, err := s.fixedWidthInt(4)
	if err != nil {
		return ast.Date{}, err
	}
	if err := s.expect('-'); err != nil {
		return ast.Date{}, err
	}
	month, err := s.fixedWidthInt(2)
	if err != nil {
		return ast.Date{}, err
	}
	if err := s.expect('-'); err != nil {
		return ast.Date{}, err
	}
	day, err := s.fixedWidthInt(2)
	if err != nil {
		return ast.Date{}, err
	}

	date, err := ast.NewDate(year, month, day)
	if err != nil {
		return ast.Date{}, newSemanticErrorf(pos, "%v", err)
	}
	return date, nil
}

// isBareSymbolChar reports whether ch may appear in a non-quoted symbol.
// Bare symbols are drawn from the complement of digits, '-', ';', '"', and
// whitespace, so a symbol can never start with a digit or minus and never
// collides with a quantity.
func isBareSymbolChar(ch byte) bool {
	if isDigit(ch) {
		return false
	}
	switch ch {
	case '-', ';', '"', ' ', '\t', '\r', '\n', 0:
		return false
	}
	return true
}

// parseSymbol parses a quoted or bare symbol, quoted first. The ordering
// matters: a symbol only begins with '"' in its quoted form.
func (s *scanner) parseSymbol() (ast.Symbol, error) {
	if s.peek() == '"' {
		return s.parseQuotedSymbol()
	}
	return s.parseBareSymbol()
}

func (s *scanner) parseQuotedSymbol() (ast.Symbol, error) {
	pos := s.position()
	s.advance() // opening quote

	start := s.pos
	for s.peek() != '"' {
		if s.eof() || s.peek() == '\n' || s.peek() == '\r' {
			return ast.Symbol{}, newStructuralErrorf(pos, "unterminated quoted symbol")
		}
		s.advance()
	}
	if s.pos == start {
		return ast.Symbol{}, newStructuralErrorf(pos, "empty quoted symbol")
	}

	value := string(s.source[start:s.pos])
	s.advance() // closing quote
	return ast.Symbol{Value: value, Quoted: true}, nil
}

func (s *scanner) parseBareSymbol() (ast.Symbol, error) {
	start := s.pos
	for !s.eof() && isBareSymbolChar(s.peek()) {
		s.advance()
	}
	if s.pos == start {
		return ast.Symbol{}, newStructuralErrorf(s.position(), "expected symbol")
	}
	return ast.Symbol{Value: string(s.source[start:s.pos])}, nil
}

// parseQuantity parses an optionally signed decimal number with grouping
// commas: ['-'] digit (digit | ',' | '.')*. At least one digit must follow
// the optional minus; a lone '-' is a structural failure, never a silently
// dropped sign. The matched text is accepted loosely (multiple '.' pass the
// grammar) and handed to decimal construction, which rejects malformed
// literals with a semantic error.
func (s *scanner) parseQuantity() (ast.Quantity, error) {
	pos := s.position()
	start := s.pos

	if s.peek() == '-' {
		s.advance()
	}
	if !isDigit(s.peek()) {
		return ast.Quantity{}, newStructuralErrorf(s.position(), "expected digit")
	}
	for {
		ch := s.peek()
		if !isDigit(ch) && ch != ',' && ch != '.' {
			break
		}
		s.advance()
	}

	literal := strings.ReplaceAll(string(s.source[start:s.pos]), ",", "")
	qty, err := ast.NewQuantity(literal)
	if err != nil {
		return ast.Quantity{}, newSemanticErrorf(pos, "invalid quantity %q", literal)
	}
	return qty, nil
}

// parseAmount parses symbol and quantity in either order, recording which
// order was used and whether whitespace separated the tokens. The
// symbol-then-quantity alternative is tried first; on failure the scanner
// backtracks fully and retries quantity-then-symbol.
func (s *scanner) parseAmount() (ast.Amount, error) {
	m := s.mark()

	if symbol, err := s.parseSymbol(); err == nil {
		spaced := s.optionalWhitespace()
		if qty, err := s.parseQuantity(); err == nil {
			return ast.Amount{
				Quantity: qty,
				Symbol:   symbol,
				Location: ast.SymbolLeft,
				Spaced:   spaced,
			}, nil
		}
	}
	s.restore(m)

	qty, err := s.parseQuantity()
	if err != nil {
		return ast.Amount{}, err
	}
	spaced := s.optionalWhitespace()
	symbol, err := s.parseSymbol()
	if err != nil {
		return ast.Amount{}, err
	}
	return ast.Amount{
		Quantity: qty,
		Symbol:   symbol,
		Location: ast.SymbolRight,
		Spaced:   spaced,
	}, nil
}

// parsePrice parses one price record:
//
//	'P' ws date ws symbol ws amount
//
// The whitespace between tokens is mandatory and discarded; only the typed
// values are retained.
func (s *scanner) parsePrice() (*ast.Price, error) {
	pos := s.position()

	if err := s.expect('P'); err != nil {
		return nil, err
	}
	if err := s.mandatoryWhitespace(); err != nil {
		return nil, err
	}
	date, err := s.parseDate()
	if err != nil {
		return nil, err
	}
	if err := s.mandatoryWhitespace(); err != nil {
		return nil, err
	}
	symbol, err := s.parseSymbol()
	if err != nil {
		return nil, err
	}
	if err := s.mandatoryWhitespace(); err != nil {
		return nil, err
	}
	amount, err := s.parseAmount()
	if err != nil {
		return nil, err
	}

	return &ast.Price{Pos: pos, Date: date, Symbol: symbol, Amount: amount}, nil
}

// parseDatabase parses zero or more price records separated by a single
// newline. Empty or all-whitespace input yields an empty database. A trailing
// newline at end of input is tolerated; blank lines between records are not.
// A single malformed record fails the whole parse, there is no
// skip-and-continue mode.
func (s *scanner) parseDatabase() (*ast.PriceDatabase, error) {
	db := &ast.PriceDatabase{}
	if len(bytes.TrimSpace(s.source)) == 0 {
		return db, nil
	}

	for {
		price, err := s.parsePrice()
		if err != nil {
			return nil, err
		}
		db.Prices = append(db.Prices, price)

		if s.eof() {
			break
		}
		if err := s.expect('\n'); err != nil {
			return nil, err
		}
		if s.eof() {
			break
		}
	}
	return db, nil
}
