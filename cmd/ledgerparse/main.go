// Command ledgerparse parses plain-text double-entry ledger files.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/trailmark/ledgerparse/cli"
)

var version = "dev"

func main() {
	var commands cli.Commands
	ctx := kong.Parse(&commands,
		kong.Name("ledgerparse"),
		kong.Description("Parse and check plain-text double-entry ledger files."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Bind(&commands.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
