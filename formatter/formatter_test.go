package formatter

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/readysetmark/wealth-pulse/ast"
	"github.com/readysetmark/wealth-pulse/parser"
)

func mustParse(t *testing.T, input string) *ast.PriceDatabase {
	t.Helper()
	db, err := parser.ParseString(input)
	assert.NoError(t, err)
	return db
}

func TestFormatCanonical(t *testing.T) {
	db := mustParse(t, "P   2016-07-10   \"MUTF25\"   $5.82\nP 2016-07-12 US$ 1.30711 CAD")

	var buf strings.Builder
	assert.NoError(t, New().Format(db, &buf))

	expected := "P 2016-07-10 \"MUTF25\" $5.82\nP 2016-07-12 US$ 1.30711 CAD\n"
	assert.Equal(t, expected, buf.String())
}

func TestFormatEmptyDatabase(t *testing.T) {
	var buf strings.Builder
	assert.NoError(t, New().Format(&ast.PriceDatabase{}, &buf))
	assert.Equal(t, "", buf.String())
}

func TestFormatWithAmountColumn(t *testing.T) {
	db := mustParse(t, "P 2016-07-10 \"MUTF25\" $5.82\nP 2016-07-12 AAPL $96.68")

	var buf strings.Builder
	assert.NoError(t, New(WithAmountColumn(24)).Format(db, &buf))

	expected := "P 2016-07-10 \"MUTF25\"   $5.82\n" +
		"P 2016-07-12 AAPL       $96.68\n"
	assert.Equal(t, expected, buf.String())
}

func TestFormatWithAlignment(t *testing.T) {
	db := mustParse(t, "P 2016-07-10 \"MUTF25\" $5.82\nP 2016-07-12 AAPL $96.68")

	var buf strings.Builder
	assert.NoError(t, New(WithAlignment()).Format(db, &buf))

	// The widest prefix is `P 2016-07-10 "MUTF25"` (21 columns), so amounts
	// align at column 23.
	expected := "P 2016-07-10 \"MUTF25\"  $5.82\n" +
		"P 2016-07-12 AAPL      $96.68\n"
	assert.Equal(t, expected, buf.String())
}

// Formatted output must re-parse to an equal database (round-trip law).
func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		`P 2016-07-10 "MUTF25" $5.82`,
		"P 2016-07-10 US$ 1.30711 CAD",
		"P 2016-07-12 AAPL 96.68USD",
	}

	for _, opts := range [][]Option{nil, {WithAlignment()}, {WithAmountColumn(30)}} {
		for _, input := range inputs {
			db := mustParse(t, input)

			var buf strings.Builder
			assert.NoError(t, New(opts...).Format(db, &buf))

			again := mustParse(t, buf.String())
			assert.Equal(t, len(db.Prices), len(again.Prices))
			assert.Equal(t, db.String(), again.String())
		}
	}
}
