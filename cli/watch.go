package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/readysetmark/wealth-pulse/loader"
)

// debounceDelay coalesces the bursts of events editors emit on save.
const debounceDelay = 100 * time.Millisecond

// WatchCmd re-parses a price database file whenever it changes, reporting
// success or the parse error each time. It runs until interrupted.
type WatchCmd struct {
	File string `help:"Price database filename." arg:""`
}

func (cmd *WatchCmd) Run(kctx *kong.Context, globals *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	absFilename, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", cmd.File, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file itself. Editors that write
	// via rename would otherwise silently detach the watch.
	if err := watcher.Add(filepath.Dir(absFilename)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absFilename), err)
	}

	check := func() {
		cmd.checkOnce(kctx, absFilename)
	}
	check()
	printInfof(kctx.Stdout, "watching %s (press Ctrl-C to stop)", cmd.File)

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			printInfof(kctx.Stdout, "stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(absFilename) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, check)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(kctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}

func (cmd *WatchCmd) checkOnce(kctx *kong.Context, absFilename string) {
	source, err := os.ReadFile(absFilename)
	if err != nil {
		printError(kctx.Stderr, fmt.Sprintf("failed to read %s: %v", cmd.File, err))
		return
	}

	db, err := loader.New().LoadBytes(context.Background(), absFilename, source)
	if err != nil {
		renderer := NewErrorRenderer(source)
		_, _ = fmt.Fprintln(kctx.Stderr, renderer.Render(err))
		printError(kctx.Stderr, "parse error")
		return
	}

	printSuccess(kctx.Stdout, fmt.Sprintf("Parsed %d price record(s)", len(db.Prices)))
}
