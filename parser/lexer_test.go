package parser

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

// recordingBuilder is a minimal Builder that returns the raw lexeme text
// (or parsed ints, for dates) as the value, so tests can assert on what the
// lexer actually saw without depending on the ast package.
type recordingBuilder struct {
	errors []string
}

func (b *recordingBuilder) MakeDate(year, month, day int, line int) (any, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, fmt.Errorf("bad date %04d-%02d-%02d", year, month, day)
	}
	return [3]int{year, month, day}, nil
}
func (b *recordingBuilder) MakeAccount(text string, line int) (any, error)  { return text, nil }
func (b *recordingBuilder) MakeCurrency(text string, line int) (any, error) { return text, nil }
func (b *recordingBuilder) MakeString(text string, line int) (any, error)   { return text, nil }
func (b *recordingBuilder) MakeNumber(text string, line int) (any, error)   { return text, nil }
func (b *recordingBuilder) MakeTag(text string, line int) (any, error)      { return text, nil }
func (b *recordingBuilder) MakeLink(text string, line int) (any, error)     { return text, nil }

func (b *recordingBuilder) Amount(number, currency any) (any, error)   { return nil, nil }
func (b *recordingBuilder) Position(amount, lotCostDate any) (any, error) { return nil, nil }
func (b *recordingBuilder) LotCostDate(amount, date any) (any, error)  { return nil, nil }
func (b *recordingBuilder) Posting(account, position, price any, priceIsTotal bool, flag byte) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) Transaction(filename string, line int, date any, flag byte, payee, narration any, tags, links, postings []any) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) Open(filename string, line int, date, account any, currencies []any) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) Close(filename string, line int, date, account any) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) Pad(filename string, line int, date, dest, src any) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) Check(filename string, line int, date, account, amount any) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) Price(filename string, line int, date, currency, amount any) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) Event(filename string, line int, date, typ, description any) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) Note(filename string, line int, date, account, comment any) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) Document(filename string, line int, date, account, path any) (any, error) {
	return nil, nil
}
func (b *recordingBuilder) HandleList(acc, item any) any { return nil }
func (b *recordingBuilder) PushTag(tag any)              {}
func (b *recordingBuilder) PopTag(tag any)               {}
func (b *recordingBuilder) Option(name, value any)       {}
func (b *recordingBuilder) Error(message, filename string, line int) {
	b.errors = append(b.errors, message)
}
func (b *recordingBuilder) StoreResult(declarations any) {}

func kindsOf(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func lexAll(t *testing.T, input string) ([]Token, *recordingBuilder) {
	t.Helper()
	b := &recordingBuilder{}
	lx := newLexer([]byte(input), "test", b, 0)
	return lx.scanAll(), b
}

func TestLexerPunctuation(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"{ }", []TokenKind{LCURL, RCURL, EOF}},
		{"@", []TokenKind{AT, EOF}},
		{"@@", []TokenKind{ATAT, EOF}},
		{"| = ,", []TokenKind{PIPE, EQUAL, COMMA, EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, _ := lexAll(t, tt.input)
			assert.Equal(t, tt.want, kindsOf(tokens))
		})
	}
}

func TestLexerIndentVsSkipped(t *testing.T) {
	// Leading whitespace followed by content is INDENT; leading whitespace
	// that carries nothing (blank, or a comment) is SKIPPED.
	tokens, _ := lexAll(t, "  Assets:Cash\n   \n  ; comment\n")
	kinds := kindsOf(tokens)
	assert.Equal(t, []TokenKind{INDENT, ACCOUNT, EOL, SKIPPED, EOL, SKIPPED, COMMENT, EOL, EOF}, kinds)
}

func TestLexerLineTokenCounterResets(t *testing.T) {
	// A FLAG character appearing after another token on the same line is a
	// FLAG, not a heading; the very next line starts its own count fresh.
	tokens, _ := lexAll(t, "2024-01-01 * \"x\"\n* heading\n")
	kinds := kindsOf(tokens)
	assert.Equal(t, []TokenKind{DATE, FLAG, STRING, EOL, SKIPPED, EOL, EOF}, kinds)
}

func TestLexerFlagVsHeading(t *testing.T) {
	tokens, _ := lexAll(t, "* this is a heading\n")
	assert.Equal(t, []TokenKind{SKIPPED, EOL, EOF}, kindsOf(tokens))
}

func TestLexerKeywordVsCurrency(t *testing.T) {
	lower, _ := lexAll(t, "txn\n")
	assert.Equal(t, []TokenKind{TXN, EOL, EOF}, kindsOf(lower))

	upper, _ := lexAll(t, "TXN\n")
	assert.Equal(t, []TokenKind{CURRENCY, EOL, EOF}, kindsOf(upper))
}

func TestLexerDateSeparatorIndependence(t *testing.T) {
	dash, _ := lexAll(t, "2024-03-15")
	slash, _ := lexAll(t, "2024/03/15")
	assert.Equal(t, dash[0].Value, slash[0].Value)
}

func TestLexerNumberLexemeRoundTrip(t *testing.T) {
	tests := []string{"123", "123.45", "-123", "+1.50", "0.0001"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			tokens, _ := lexAll(t, in)
			assert.Equal(t, NUMBER, tokens[0].Kind)
			assert.Equal(t, in, tokens[0].Value)
		})
	}
}

func TestLexerAccountVsCurrency(t *testing.T) {
	tokens, _ := lexAll(t, "Assets:Bank:Checking USD\n")
	kinds := kindsOf(tokens)
	assert.Equal(t, []TokenKind{ACCOUNT, CURRENCY, EOL, EOF}, kinds)
}

func TestLexerTagAndLink(t *testing.T) {
	// '#' only lexes as TAG once something else has already started the
	// line; at the very start of a line '#' is the heading/flag character.
	// '^' always lexes as LINK.
	tokens, _ := lexAll(t, "2024-01-01 txn #trip ^invoice-42\n")
	kinds := kindsOf(tokens)
	assert.Equal(t, []TokenKind{DATE, TXN, TAG, LINK, EOL, EOF}, kinds)
	assert.Equal(t, "trip", tokens[2].Value)
	assert.Equal(t, "invoice-42", tokens[3].Value)
}

func TestLexerStringNoEscapes(t *testing.T) {
	tokens, _ := lexAll(t, `"hello \n world"`)
	assert.Equal(t, STRING, tokens[0].Kind)
	assert.Equal(t, `hello \n world`, tokens[0].Value)
}

func TestLexerFirstLineOffset(t *testing.T) {
	b := &recordingBuilder{}
	lx := newLexer([]byte("txn\n"), "test", b, 10)
	tokens := lx.scanAll()
	assert.Equal(t, 11, tokens[0].Line)
}
