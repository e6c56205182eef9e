// Package diagnostics renders ast.Error values against their source text
// for terminal display: a colorized filename:line header, the offending
// source line, and a caret pointing at the start of it. It is presentation
// only; nothing in the parser or ast packages depends on it.
package diagnostics

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/trailmark/ledgerparse/ast"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	caretStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// Renderer formats errors against one source file's content.
type Renderer struct {
	source []byte
	lines  [][]byte
}

// NewRenderer prepares a Renderer over a file's full source text.
func NewRenderer(source []byte) *Renderer {
	return &Renderer{source: source, lines: bytes.Split(source, []byte("\n"))}
}

// Render formats a single diagnostic as a multi-line string.
func (r *Renderer) Render(err ast.Error) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		headerStyle.Render(fmt.Sprintf("%s:%d:", err.Filename, err.Line)),
		err.Message,
	)

	if line, ok := r.lineText(err.Line); ok {
		fmt.Fprintf(&b, "  %s\n", lineStyle.Render(line))
		indent := leadingWidth(line)
		fmt.Fprintf(&b, "  %s%s\n", strings.Repeat(" ", indent), caretStyle.Render("^"))
	}

	return b.String()
}

// RenderAll formats every error, separated by a blank line.
func (r *Renderer) RenderAll(errs []ast.Error) string {
	rendered := make([]string, 0, len(errs))
	for _, err := range errs {
		rendered = append(rendered, r.Render(err))
	}
	return strings.Join(rendered, "\n")
}

func (r *Renderer) lineText(line int) (string, bool) {
	idx := line - 1
	if idx < 0 || idx >= len(r.lines) {
		return "", false
	}
	return string(r.lines[idx]), true
}

// leadingWidth returns the display width (not byte count) of a line's
// leading spaces and tabs as go-runewidth measures them. A space counts as
// one column and a tab as zero, so the caret lands under the first
// non-blank rune only on lines indented with spaces.
func leadingWidth(line string) int {
	width := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		width += runewidth.RuneWidth(r)
	}
	return width
}
