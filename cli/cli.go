// Package cli wires the parser and ast packages into a kong-driven
// command-line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const (
	successSymbol = "✓"
	errorSymbol   = "✗"
)

func printSuccess(format string, args ...any) {
	fmt.Printf("%s %s\n", successStyle.Render(successSymbol), fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render(errorSymbol), fmt.Sprintf(format, args...))
}

func printDim(format string, args ...any) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, args...)))
}

// isTerminal reports whether stdin looks interactive, the same check the
// CheckCmd uses to decide whether to offer an interactive confirm prompt.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
