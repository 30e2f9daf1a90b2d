// Package parser implements the price database grammar.
//
// A price database is a sequence of dated price-quote records, one per line:
//
//	P 2016-07-10 "MUTF25" $5.82
//	P 2016-07-10 US$ 1.30711 CAD
//
// The parser is a set of composable grammar rules threading an explicit
// cursor over the input buffer. It is a pure function of its input: no state
// is retained across records, no I/O happens mid-parse, and identical input
// deterministically yields identical output. Failures are typed: ParseError
// for structural mismatches and SemanticError for values that matched the
// grammar but failed validation (calendar dates, decimal literals). Both
// carry the source position of the failure.
package parser

import (
	"io"

	"github.com/readysetmark/wealth-pulse/ast"
)

// Parse parses a price database from an io.Reader.
func Parse(r io.Reader) (*ast.PriceDatabase, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data)
}

// ParseString parses a price database from a string.
func ParseString(str string) (*ast.PriceDatabase, error) {
	return ParseBytes([]byte(str))
}

// ParseBytes parses a price database from bytes.
func ParseBytes(data []byte) (*ast.PriceDatabase, error) {
	return ParseBytesWithFilename("", data)
}

// ParseBytesWithFilename parses a price database from bytes, recording the
// filename in error positions for diagnostics.
func ParseBytesWithFilename(filename string, data []byte) (*ast.PriceDatabase, error) {
	return newScanner(data, filename).parseDatabase()
}
