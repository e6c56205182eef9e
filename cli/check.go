package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"

	"github.com/trailmark/ledgerparse/ast"
	"github.com/trailmark/ledgerparse/diagnostics"
	"github.com/trailmark/ledgerparse/parser"
)

// CheckCmd parses a single file and renders any errors against its source
// text, offering an interactive choice to continue when run from a
// terminal.
type CheckCmd struct {
	File string `arg:"" type:"existingfile" help:"Ledger file to check."`
}

func (c *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	source, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	b := ast.New()
	if err := parser.Parse(source, c.File, b); err != nil {
		return err
	}

	if len(b.Errors) == 0 {
		printSuccess("%s: %d declaration(s), no errors", c.File, len(b.Declarations))
		return nil
	}

	renderer := diagnostics.NewRenderer(source)
	printError("%s: %d error(s)", c.File, len(b.Errors))
	printDim("%s", renderer.RenderAll(b.Errors))

	if isTerminal() {
		var proceed bool
		err := huh.NewConfirm().
			Title("Exit with a non-zero status?").
			Affirmative("Yes").
			Negative("No").
			Value(&proceed).
			Run()
		if err == nil && !proceed {
			return nil
		}
	}

	os.Exit(1)
	return nil
}
