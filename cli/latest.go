package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/readysetmark/wealth-pulse/loader"
	"github.com/readysetmark/wealth-pulse/pricedb"
)

// LatestCmd reports the most recent price observation per symbol.
type LatestCmd struct {
	File FileOrStdin `help:"Price database filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *LatestCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	sourceContent, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	db, err := cmd.File.LoadDB(context.Background(), loader.New())
	if err != nil {
		renderer := NewErrorRenderer(sourceContent)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		printError(ctx.Stderr, "parse error")
		return NewCommandError(1)
	}

	if len(db.Prices) == 0 {
		printInfof(ctx.Stdout, "no price records")
		return nil
	}

	latest := pricedb.Latest(db)
	symbols := pricedb.Symbols(db)

	symbolWidth := runewidth.StringWidth("SYMBOL")
	for _, symbol := range symbols {
		if w := runewidth.StringWidth(symbol); w > symbolWidth {
			symbolWidth = w
		}
	}

	_, _ = fmt.Fprintf(ctx.Stdout, "%s  %s  %s\n",
		headerStyle.Render(runewidth.FillRight("SYMBOL", symbolWidth)),
		headerStyle.Render("DATE      "),
		headerStyle.Render("PRICE"),
	)
	for _, symbol := range symbols {
		price := latest[symbol]
		_, _ = fmt.Fprintf(ctx.Stdout, "%s  %s  %s\n",
			runewidth.FillRight(symbol, symbolWidth),
			price.Date.String(),
			price.Amount.String(),
		)
	}

	return nil
}
