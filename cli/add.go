package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"

	"github.com/readysetmark/wealth-pulse/parser"
)

// AddCmd appends a price record to a price database file. Missing fields are
// prompted for interactively; the assembled line is validated with the real
// grammar before anything is written.
type AddCmd struct {
	File   string `help:"Price database filename." arg:""`
	Date   string `help:"Date of the observation (YYYY-MM-DD)."`
	Symbol string `help:"Symbol the price is quoted for (quote it to allow spaces or digits)."`
	Price  string `help:"Amount, e.g. '$5.82' or '1.30711 CAD'."`
}

func (cmd *AddCmd) Run(ctx *kong.Context, globals *Globals) error {
	if cmd.Date == "" || cmd.Symbol == "" || cmd.Price == "" {
		if !isTerminal() {
			return fmt.Errorf("missing --date, --symbol or --price and stdin is not a terminal")
		}

		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Date (YYYY-MM-DD)").Value(&cmd.Date),
			huh.NewInput().Title("Symbol").Value(&cmd.Symbol),
			huh.NewInput().Title("Price").Value(&cmd.Price),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	line := fmt.Sprintf("P %s %s %s", cmd.Date, cmd.Symbol, cmd.Price)

	db, err := parser.ParseString(line)
	if err != nil {
		renderer := NewErrorRenderer([]byte(line))
		_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
		printError(ctx.Stderr, "invalid price record")
		return NewCommandError(1)
	}
	record := db.Prices[0]

	// Validate the existing database before touching it; appending to a file
	// that no longer parses would only bury the earlier mistake.
	existing, err := os.ReadFile(cmd.File)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", cmd.File, err)
	}
	if len(existing) > 0 {
		if _, err := parser.ParseBytesWithFilename(cmd.File, existing); err != nil {
			renderer := NewErrorRenderer(existing)
			_, _ = fmt.Fprintln(ctx.Stderr, renderer.Render(err))
			printError(ctx.Stderr, fmt.Sprintf("%s does not parse; fix it before appending", cmd.File))
			return NewCommandError(1)
		}
	}

	if isTerminal() {
		confirm, err := promptConfirm(fmt.Sprintf("Append %q to %s?", record.String(), cmd.File))
		if err != nil {
			return err
		}
		if !confirm {
			printInfof(ctx.Stdout, "aborted")
			return nil
		}
	}

	entry := record.String() + "\n"
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		entry = "\n" + entry
	}

	f, err := os.OpenFile(cmd.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", cmd.File, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.File, err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Appended %s", record.String()))
	return nil
}
