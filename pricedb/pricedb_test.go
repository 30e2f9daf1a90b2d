package pricedb

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/readysetmark/wealth-pulse/ast"
	"github.com/readysetmark/wealth-pulse/parser"
)

func mustParse(t *testing.T, lines ...string) *ast.PriceDatabase {
	t.Helper()
	db, err := parser.ParseString(strings.Join(lines, "\n"))
	assert.NoError(t, err)
	return db
}

func TestSortByDate(t *testing.T) {
	db := mustParse(t,
		"P 2016-07-12 AAPL $96.68",
		`P 2016-07-10 "MUTF25" $5.82`,
		"P 2016-07-11 US$ 1.30711 CAD",
	)

	sorted := SortByDate(db)
	assert.Equal(t, 3, len(sorted))
	assert.Equal(t, "2016-07-10", sorted[0].Date.String())
	assert.Equal(t, "2016-07-11", sorted[1].Date.String())
	assert.Equal(t, "2016-07-12", sorted[2].Date.String())

	// The parsed database keeps file order.
	assert.Equal(t, "2016-07-12", db.Prices[0].Date.String())
}

func TestSortByDateIsStable(t *testing.T) {
	db := mustParse(t,
		"P 2016-07-10 AAPL $96.68",
		"P 2016-07-10 AAPL $97.01",
	)

	sorted := SortByDate(db)
	assert.Equal(t, "96.68", sorted[0].Amount.Quantity.String())
	assert.Equal(t, "97.01", sorted[1].Amount.Quantity.String())
}

func TestLatest(t *testing.T) {
	db := mustParse(t,
		`P 2016-07-10 "MUTF25" $5.82`,
		"P 2016-07-12 AAPL $96.68",
		`P 2016-07-13 "MUTF25" $5.94`,
		"P 2016-07-11 AAPL $95.10",
	)

	latest := Latest(db)
	assert.Equal(t, 2, len(latest))
	assert.Equal(t, "5.94", latest["MUTF25"].Amount.Quantity.String())
	assert.Equal(t, "96.68", latest["AAPL"].Amount.Quantity.String())
}

func TestLatestSameDateLastLineWins(t *testing.T) {
	db := mustParse(t,
		"P 2016-07-10 AAPL $96.68",
		"P 2016-07-10 AAPL $97.01",
	)

	latest := Latest(db)
	assert.Equal(t, "97.01", latest["AAPL"].Amount.Quantity.String())
}

func TestHistory(t *testing.T) {
	db := mustParse(t,
		`P 2016-07-13 "MUTF25" $5.94`,
		"P 2016-07-12 AAPL $96.68",
		`P 2016-07-10 "MUTF25" $5.82`,
	)

	history := History(db, "MUTF25")
	assert.Equal(t, 2, len(history))
	assert.Equal(t, "5.82", history[0].Amount.Quantity.String())
	assert.Equal(t, "5.94", history[1].Amount.Quantity.String())

	assert.Equal(t, 0, len(History(db, "GOOG")))
}

func TestSymbols(t *testing.T) {
	db := mustParse(t,
		`P 2016-07-10 "MUTF25" $5.82`,
		"P 2016-07-12 AAPL $96.68",
		`P 2016-07-13 "MUTF25" $5.94`,
	)

	assert.Equal(t, []string{"AAPL", "MUTF25"}, Symbols(db))
}

func TestEmptyDatabase(t *testing.T) {
	db := &ast.PriceDatabase{}
	assert.Equal(t, 0, len(SortByDate(db)))
	assert.Equal(t, 0, len(Latest(db)))
	assert.Equal(t, 0, len(Symbols(db)))
}
