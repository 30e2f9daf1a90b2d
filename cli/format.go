package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/readysetmark/wealth-pulse/formatter"
	"github.com/readysetmark/wealth-pulse/loader"
	"github.com/readysetmark/wealth-pulse/telemetry"
)

type FormatCmd struct {
	File         FileOrStdin `help:"Price database filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Align        bool        `help:"Align amounts at a column computed from the contents."`
	AmountColumn int         `help:"Column for amount alignment (implies --align, auto if 0)." default:"0"`
}

func (cmd *FormatCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx := context.Background()

	var collector telemetry.Collector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	sourceContent, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	db, err := cmd.File.LoadDB(runCtx, loader.New())
	if err != nil {
		renderer := NewErrorRenderer(sourceContent)
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		printError(ctx.Stderr, "parse error")
		return NewCommandError(1)
	}

	var opts []formatter.Option
	if cmd.AmountColumn > 0 {
		opts = append(opts, formatter.WithAmountColumn(cmd.AmountColumn))
	} else if cmd.Align {
		opts = append(opts, formatter.WithAlignment())
	}

	return formatter.New(opts...).Format(db, ctx.Stdout)
}
