// Package ast defines the typed records a price database parses into.
//
// A price database is a sequence of observations of the form
//
//	P 2016-07-10 "MUTF25" $5.82
//
// meaning "on 2016-07-10, one unit of MUTF25 was worth $5.82". Every type in
// this package is immutable once constructed and serializes back to its
// canonical source text via String(), so a parsed database can be re-emitted
// and re-parsed to an equal value.
package ast

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol identifies a tradable asset or currency. Symbols come in two forms:
// bare (US$, AAPL) and quoted ("MUTF25", "S&P 500"). Quoting allows characters
// that the bare form excludes, such as spaces and digits.
//
// Invariants: Value is never empty; a quoted symbol contains no quote or
// newline characters; a bare symbol contains no digit, minus, semicolon,
// quote, or whitespace characters.
type Symbol struct {
	Value  string
	Quoted bool
}

// String returns the symbol in its source form, re-adding quotes when the
// symbol was quoted.
func (s Symbol) String() string {
	if s.Quoted {
		return `"` + s.Value + `"`
	}
	return s.Value
}

// Quantity is an exact decimal numeric value. The value is kept both as a
// decimal for arithmetic and as the comma-stripped source literal, so that
// re-serialization preserves the exact digits that were written (including
// trailing zeros the decimal library would normalize away).
type Quantity struct {
	value decimal.Decimal
	text  string
}

// NewQuantity constructs a Quantity from a literal with grouping commas
// already removed (sign, digits, at most one decimal point). It returns an
// error if the literal is not a valid decimal number.
func NewQuantity(literal string) (Quantity, error) {
	d, err := decimal.NewFromString(literal)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: d, text: literal}, nil
}

// MustQuantity constructs a Quantity and panics on an invalid literal.
// Intended for tests and static values.
func MustQuantity(literal string) Quantity {
	q, err := NewQuantity(literal)
	if err != nil {
		panic(err)
	}
	return q
}

// Decimal returns the exact decimal value.
func (q Quantity) Decimal() decimal.Decimal { return q.value }

// Equal reports whether two quantities have the same numeric value,
// regardless of how they were written (5.8 equals 5.80).
func (q Quantity) Equal(o Quantity) bool { return q.value.Equal(o.value) }

// IsNegative reports whether the quantity is less than zero.
func (q Quantity) IsNegative() bool { return q.value.IsNegative() }

// String returns the quantity as it was written, grouping commas removed.
func (q Quantity) String() string { return q.text }

// SymbolLocation records on which side of the quantity the symbol token
// appeared in the source.
type SymbolLocation int

const (
	// SymbolLeft means the symbol preceded the quantity ($5.82).
	SymbolLeft SymbolLocation = iota
	// SymbolRight means the symbol followed the quantity (5.82 USD).
	SymbolRight
)

func (l SymbolLocation) String() string {
	if l == SymbolLeft {
		return "left"
	}
	return "right"
}

// Amount pairs a quantity with its symbol and the positional convention used
// to write them together. Location records the source ordering and Spaced
// records whether any whitespace separated the two tokens. Only the presence
// of whitespace is recorded, not its width, so round-tripping normalizes runs
// of spaces to a single space.
type Amount struct {
	Quantity Quantity
	Symbol   Symbol
	Location SymbolLocation
	Spaced   bool
}

// String returns the amount in its source ordering.
func (a Amount) String() string {
	sep := ""
	if a.Spaced {
		sep = " "
	}
	if a.Location == SymbolLeft {
		return a.Symbol.String() + sep + a.Quantity.String()
	}
	return a.Quantity.String() + sep + a.Symbol.String()
}

// Price is a single quoted-price observation: on Date, one unit of Symbol was
// worth Amount. Prices are constructed atomically by the parser from a matched
// input line and are immutable afterwards.
type Price struct {
	Pos    Position
	Date   Date
	Symbol Symbol
	Amount Amount
}

// String returns the price record in canonical form, with single spaces
// between tokens.
func (p *Price) String() string {
	return "P " + p.Date.String() + " " + p.Symbol.String() + " " + p.Amount.String()
}

// PriceDatabase is an ordered sequence of price records, one per source line,
// in file order. No sorting or de-duplication is applied; an empty database is
// valid.
type PriceDatabase struct {
	Prices []*Price
}

// String returns the database in canonical form, one record per line, with no
// trailing newline.
func (db *PriceDatabase) String() string {
	lines := make([]string, len(db.Prices))
	for i, p := range db.Prices {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}
