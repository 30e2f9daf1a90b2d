// Package formatter serializes a parsed price database back to text.
//
// The canonical form separates tokens with single spaces and preserves each
// amount's symbol ordering and whitespace presence. Optionally, amounts can be
// aligned at a fixed or auto-computed column, the way ledger tooling aligns
// currencies for readability.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/readysetmark/wealth-pulse/ast"
)

const (
	// MinimumSpacing is the minimum number of spaces between the record's
	// symbol and its amount when aligning.
	MinimumSpacing = 1

	// DefaultAlignSpacing is the gap added after the widest prefix when the
	// alignment column is auto-computed.
	DefaultAlignSpacing = 2
)

// Formatter handles formatting of price databases.
type Formatter struct {
	// Align enables amount-column alignment. When false (the default) records
	// are emitted in canonical single-space form.
	Align bool

	// AmountColumn is the target column for amounts when aligning.
	// If 0, a good value is selected automatically from the contents.
	AmountColumn int
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithAmountColumn aligns amounts at a specific column.
func WithAmountColumn(col int) Option {
	return func(f *Formatter) {
		f.Align = true
		f.AmountColumn = col
	}
}

// WithAlignment aligns amounts at a column computed from the widest record.
func WithAlignment() Option {
	return func(f *Formatter) {
		f.Align = true
	}
}

// New creates a Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format writes the database to w, one record per line with a trailing
// newline. An empty database produces no output.
func (f *Formatter) Format(db *ast.PriceDatabase, w io.Writer) error {
	if len(db.Prices) == 0 {
		return nil
	}

	col := 0
	if f.Align {
		col = f.AmountColumn
		if col == 0 {
			col = maxPrefixWidth(db) + DefaultAlignSpacing
		}
	}

	for _, price := range db.Prices {
		if err := f.formatPrice(price, col, w); err != nil {
			return err
		}
	}
	return nil
}

// FormatPrice writes a single record to w in canonical form, with a trailing
// newline.
func (f *Formatter) FormatPrice(price *ast.Price, w io.Writer) error {
	return f.formatPrice(price, 0, w)
}

func (f *Formatter) formatPrice(price *ast.Price, col int, w io.Writer) error {
	if col == 0 {
		_, err := fmt.Fprintln(w, price.String())
		return err
	}

	prefix := "P " + price.Date.String() + " " + price.Symbol.String()
	gap := col - runewidth.StringWidth(prefix)
	if gap < MinimumSpacing {
		gap = MinimumSpacing
	}

	_, err := fmt.Fprintln(w, prefix+strings.Repeat(" ", gap)+price.Amount.String())
	return err
}

// maxPrefixWidth returns the display width of the widest "P date symbol"
// prefix in the database. Quoted symbols may contain wide runes, so widths
// are measured, not counted in bytes.
func maxPrefixWidth(db *ast.PriceDatabase) int {
	max := 0
	for _, price := range db.Prices {
		width := runewidth.StringWidth("P " + price.Date.String() + " " + price.Symbol.String())
		if width > max {
			max = width
		}
	}
	return max
}
