package diagnostics

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/trailmark/ledgerparse/ast"
)

func TestRenderIncludesMessageAndSourceLine(t *testing.T) {
	source := []byte("2024-01-01 open ???\n2024-01-02 close Assets:Cash\n")
	r := NewRenderer(source)

	out := r.Render(ast.Error{Message: "unexpected token", Filename: "f.ledger", Line: 1})

	assert.True(t, strings.Contains(out, "f.ledger:1:"))
	assert.True(t, strings.Contains(out, "unexpected token"))
	assert.True(t, strings.Contains(out, "2024-01-01 open ???"))
}

func TestRenderOutOfRangeLineOmitsSource(t *testing.T) {
	source := []byte("2024-01-01 open Assets:Cash USD\n")
	r := NewRenderer(source)

	out := r.Render(ast.Error{Message: "late error", Filename: "f.ledger", Line: 99})
	assert.True(t, strings.Contains(out, "late error"))
}

func TestRenderAllJoinsMultipleErrors(t *testing.T) {
	source := []byte("line one\nline two\n")
	r := NewRenderer(source)

	out := r.RenderAll([]ast.Error{
		{Message: "first", Filename: "f", Line: 1},
		{Message: "second", Filename: "f", Line: 2},
	})
	assert.True(t, strings.Contains(out, "first"))
	assert.True(t, strings.Contains(out, "second"))
}
