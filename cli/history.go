package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/readysetmark/wealth-pulse/loader"
	"github.com/readysetmark/wealth-pulse/pricedb"
)

// HistoryCmd reports every observation for one symbol in date order.
type HistoryCmd struct {
	Symbol string      `help:"Symbol to show the price history for." arg:""`
	File   FileOrStdin `help:"Price database filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *HistoryCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	history := pricedb.History(db, cmd.Symbol)
	if len(history) == 0 {
		printInfof(ctx.Stdout, "no price records for %s", cmd.Symbol)
		return nil
	}

	for _, price := range history {
		_, _ = fmt.Fprintf(ctx.Stdout, "%s  %s\n", price.Date.String(), price.Amount.String())
	}

	return nil
}
