package cli

// Globals holds flags shared by every subcommand.
type Globals struct {
	Debug bool `help:"Dump the parsed declaration tree." short:"d"`
}

// Commands is the root kong command structure.
type Commands struct {
	Globals

	Parse ParseCmd `cmd:"" help:"Parse one or more ledger files and report success or failure."`
	Check CheckCmd `cmd:"" help:"Parse a ledger file and render any errors against its source."`
	Watch WatchCmd `cmd:"" help:"Re-check a ledger file every time it changes on disk."`
}
