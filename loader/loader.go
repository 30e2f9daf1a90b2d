// Package loader reads price database files from disk and hands the parser a
// complete in-memory buffer. The parsing core performs no I/O of its own;
// filesystem failures are reported here, parse failures come back as the
// parser's typed errors with the filename recorded in their positions.
package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/readysetmark/wealth-pulse/ast"
	"github.com/readysetmark/wealth-pulse/parser"
)

// Loader loads and parses price database files.
type Loader struct{}

// New creates a new Loader.
func New() *Loader {
	return &Loader{}
}

// Load reads filename and parses it as a price database.
func (l *Loader) Load(ctx context.Context, filename string) (*ast.PriceDatabase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	return parser.ParseBytesWithFilename(filename, data)
}

// LoadBytes parses already-read contents, recording filename in diagnostics.
// Used when the contents arrive from stdin or another non-file source.
func (l *Loader) LoadBytes(ctx context.Context, filename string, data []byte) (*ast.PriceDatabase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return parser.ParseBytesWithFilename(filename, data)
}
