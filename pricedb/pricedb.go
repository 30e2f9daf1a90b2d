// Package pricedb provides reporting queries over a parsed price database.
// The parser preserves file order; everything here works on copies, so the
// parsed database itself is never reordered or mutated.
package pricedb

import (
	"golang.org/x/exp/slices"

	"github.com/readysetmark/wealth-pulse/ast"
)

// compareByDate orders prices chronologically. Records on the same date keep
// their file order (sorting is stable), so a later line wins ties.
func compareByDate(a, b *ast.Price) int {
	switch {
	case a.Date.Before(b.Date.Time):
		return -1
	case a.Date.After(b.Date.Time):
		return 1
	default:
		return 0
	}
}

// SortByDate returns the records sorted chronologically, earliest first.
func SortByDate(db *ast.PriceDatabase) []*ast.Price {
	sorted := slices.Clone(db.Prices)
	slices.SortStableFunc(sorted, compareByDate)
	return sorted
}

// Latest returns the most recent observation for each symbol, keyed by the
// symbol's value. For symbols quoted multiple times on their latest date, the
// record appearing last in the file wins.
func Latest(db *ast.PriceDatabase) map[string]*ast.Price {
	latest := make(map[string]*ast.Price)
	for _, price := range db.Prices {
		current, ok := latest[price.Symbol.Value]
		if !ok || !price.Date.Before(current.Date.Time) {
			latest[price.Symbol.Value] = price
		}
	}
	return latest
}

// History returns all observations for one symbol, sorted chronologically.
func History(db *ast.PriceDatabase, symbol string) []*ast.Price {
	var history []*ast.Price
	for _, price := range db.Prices {
		if price.Symbol.Value == symbol {
			history = append(history, price)
		}
	}
	slices.SortStableFunc(history, compareByDate)
	return history
}

// Symbols returns the distinct symbol values quoted in the database, sorted.
func Symbols(db *ast.PriceDatabase) []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, price := range db.Prices {
		if !seen[price.Symbol.Value] {
			seen[price.Symbol.Value] = true
			symbols = append(symbols, price.Symbol.Value)
		}
	}
	slices.Sort(symbols)
	return symbols
}
