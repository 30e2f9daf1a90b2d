package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check   CheckCmd   `cmd:"" help:"Parse and validate a price database file."`
	Format  FormatCmd  `cmd:"" help:"Format a price database file, optionally aligning amounts."`
	Dump    DumpCmd    `cmd:"" help:"Parse a price database file and dump the typed records."`
	Latest  LatestCmd  `cmd:"" help:"Show the most recent price for each symbol."`
	History HistoryCmd `cmd:"" help:"Show all prices for one symbol in date order."`
	Add     AddCmd     `cmd:"" help:"Append a price record to a price database file."`
	Watch   WatchCmd   `cmd:"" help:"Re-check a price database file whenever it changes."`
}
