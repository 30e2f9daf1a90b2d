package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/readysetmark/wealth-pulse/parser"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.txt")
	contents := "P 2016-07-10 \"MUTF25\" $5.82\nP 2016-07-12 AAPL $96.68\n"
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	db, err := New().Load(context.Background(), path)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(db.Prices))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadParseErrorCarriesFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.txt")
	assert.NoError(t, os.WriteFile(path, []byte("P 2016-13-10 AAPL $5.82"), 0o644))

	_, err := New().Load(context.Background(), path)
	assert.Error(t, err)

	var serr *parser.SemanticError
	assert.True(t, errors.As(err, &serr))
	assert.Equal(t, path, serr.Pos.Filename)
}

func TestLoadBytes(t *testing.T) {
	db, err := New().LoadBytes(context.Background(), "<stdin>", []byte(`P 2016-07-10 "MUTF25" $5.82`))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(db.Prices))
	assert.Equal(t, "<stdin>", db.Prices[0].Pos.Filename)
}

func TestLoadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Load(ctx, "prices.txt")
	assert.True(t, errors.Is(err, context.Canceled))
}
