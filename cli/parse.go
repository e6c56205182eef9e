package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"golang.org/x/sync/errgroup"

	"github.com/trailmark/ledgerparse/ast"
	"github.com/trailmark/ledgerparse/parser"
)

// ParseCmd parses each file independently and concurrently, demonstrating
// that a parser.Parse call carries no state beyond its own arguments.
type ParseCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Ledger files to parse."`
}

func (c *ParseCmd) Run(ctx *kong.Context, globals *Globals) error {
	results := make([]*ast.Builder, len(c.Files))

	var g errgroup.Group
	for i, file := range c.Files {
		i, file := i, file
		g.Go(func() error {
			source, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			b := ast.New()
			if err := parser.Parse(source, file, b); err != nil {
				return err
			}
			results[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := false
	for i, file := range c.Files {
		b := results[i]
		if len(b.Errors) > 0 {
			failed = true
			printError("%s: %d error(s)", file, len(b.Errors))
			continue
		}
		printSuccess("%s: %d declaration(s)", file, len(b.Declarations))
		if globals.Debug {
			ast.SortDeclarations(b.Declarations)
			repr.Println(b.Declarations)
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
