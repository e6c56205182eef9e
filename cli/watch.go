package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/trailmark/ledgerparse/ast"
	"github.com/trailmark/ledgerparse/diagnostics"
	"github.com/trailmark/ledgerparse/parser"
)

// WatchCmd re-parses a file every time it changes on disk, using a fresh
// ast.Builder and parser.Parse call each time: no state from one check
// leaks into the next.
type WatchCmd struct {
	File string `arg:"" type:"existingfile" help:"Ledger file to watch."`
}

func (c *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(c.File); err != nil {
		return err
	}

	c.check()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				c.check()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError("watch: %v", err)
		}
	}
}

func (c *WatchCmd) check() {
	source, err := os.ReadFile(c.File)
	if err != nil {
		printError("%v", err)
		return
	}

	b := ast.New()
	if err := parser.Parse(source, c.File, b); err != nil {
		printError("%v", err)
		return
	}

	if len(b.Errors) == 0 {
		printSuccess("%s: %d declaration(s), no errors", c.File, len(b.Declarations))
		return
	}

	renderer := diagnostics.NewRenderer(source)
	printError("%s: %d error(s)", c.File, len(b.Errors))
	printDim("%s", renderer.RenderAll(b.Errors))
}
