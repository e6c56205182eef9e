package parser

import "fmt"

// Parser drives the grammar over a pre-scanned token stream, calling
// through to a Builder on every reduction. It holds no state beyond its own
// fields, so nothing prevents two Parse calls from running concurrently
// over independent sources (spec.md §5).
type Parser struct {
	tokens   []Token
	pos      int
	filename string
	builder  Builder
}

// Parse lexes and parses source in its entirety, driving b for every value,
// directive, and side effect the grammar produces. It returns a non-nil
// error only for a misuse of the call itself (a nil Builder); syntax and
// lexical problems are reported exclusively through b.Error, never through
// the return value. b.StoreResult is called exactly once, even when the
// source contains errors.
func Parse(source []byte, filename string, b Builder, opts ...Option) error {
	if b == nil {
		return &ConfigError{reason: "nil Builder"}
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	lx := newLexer(source, filename, b, cfg.firstLineOffset)
	tokens := lx.scanAll()

	p := &Parser{
		tokens:   tokens,
		filename: filename,
		builder:  b,
	}

	result := p.parseDeclarations()
	b.StoreResult(result)
	return nil
}

// Token stream navigation.

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAhead(n int) Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel
	}
	return p.tokens[i]
}

func (p *Parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kind TokenKind) (Token, bool) {
	if p.check(kind) {
		return p.advance(), true
	}
	return Token{}, false
}

// expect consumes a token of the given kind or reports an error at the
// current position and returns ok=false without advancing past EOF.
func (p *Parser) expect(kind TokenKind) (Token, bool) {
	if tok, ok := p.match(kind); ok {
		return tok, true
	}
	p.errorf(p.peek(), "expected %s, got %s", kind, p.peek().Kind)
	return Token{}, false
}

func (p *Parser) errorf(at Token, format string, args ...any) {
	p.builder.Error(fmt.Sprintf(format, args...), p.filename, at.Line)
}

// eol consumes a trailing COMMENT (shift-preferred over reducing the
// current production) and then requires EOL or EOF. This is the
// resolution to the four shift/reduce conflicts the grammar documents at
// end-of-line: a pending COMMENT is always shifted before EOL is reduced.
func (p *Parser) eol() bool {
	if p.check(COMMENT) {
		p.advance()
	}
	if p.check(EOF) {
		return true
	}
	if _, ok := p.expect(EOL); !ok {
		p.recover()
		return false
	}
	return true
}

// recover discards tokens until one that can legally start a new
// declaration (DATE, PUSHTAG, POPTAG, OPTION, or EOF), realizing the
// grammar's `declarations := declarations error` production without a
// generated error-token mechanism.
func (p *Parser) recover() {
	for !p.peek().IsDeclarationStart() {
		p.advance()
	}
}

// parseDeclarations drives `file := declarations EOF`.
func (p *Parser) parseDeclarations() any {
	var acc any
	for !p.check(EOF) {
		item, ok := p.parseDirective()
		if ok && item != nil {
			acc = p.builder.HandleList(acc, item)
		}
		if !ok {
			p.recover()
		}
	}
	p.advance() // EOF
	return acc
}

// parseDirective drives `directive`. It returns ok=false when it could not
// make progress and the caller should resynchronize; item is nil for
// productions that are pure side effects (SKIPPED lines, pushtag/poptag,
// option) or blank lines, and non-nil for anything the declarations list
// should retain.
func (p *Parser) parseDirective() (item any, ok bool) {
	switch p.peek().Kind {
	case SKIPPED:
		p.advance()
		return nil, true

	case EOL:
		p.advance()
		return nil, true

	case COMMENT:
		p.advance()
		p.eol()
		return nil, true

	case INDENT:
		p.advance()
		if p.check(EOL) || p.check(EOF) || p.check(COMMENT) {
			// `empty_line := INDENT eol | INDENT`: indentation with nothing
			// following it is blank, not an error.
			p.eol()
			return nil, true
		}
		// A line beginning with indentation outside of a transaction's
		// posting_list is not a valid directive (spec.md §6).
		p.errorf(p.peek(), "unexpected indented content outside a transaction")
		return nil, false

	case PUSHTAG:
		return p.parsePushtag()

	case POPTAG:
		return p.parsePoptag()

	case OPTION:
		return p.parseOption()

	case DATE:
		return p.parseEntry()

	default:
		p.errorf(p.peek(), "unexpected %s", p.peek().Kind)
		return nil, false
	}
}

func (p *Parser) parsePushtag() (any, bool) {
	p.advance() // PUSHTAG
	tag, ok := p.expect(TAG)
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	p.builder.PushTag(tag.Value)
	return nil, true
}

func (p *Parser) parsePoptag() (any, bool) {
	p.advance() // POPTAG
	tag, ok := p.expect(TAG)
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	p.builder.PopTag(tag.Value)
	return nil, true
}

func (p *Parser) parseOption() (any, bool) {
	p.advance() // OPTION
	name, ok := p.expect(STRING)
	if !ok {
		return nil, false
	}
	value, ok := p.expect(STRING)
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	p.builder.Option(name.Value, value.Value)
	return nil, true
}

// parseEntry drives `entry := DATE (transaction_body | open | close | pad |
// check | price | event | note | document)`.
func (p *Parser) parseEntry() (any, bool) {
	dateTok := p.advance() // DATE
	line := dateTok.Line

	switch p.peek().Kind {
	case TXN, FLAG:
		return p.parseTransaction(dateTok, line)
	case OPEN:
		return p.parseOpen(dateTok, line)
	case CLOSE:
		return p.parseClose(dateTok, line)
	case PAD:
		return p.parsePad(dateTok, line)
	case CHECK:
		return p.parseCheck(dateTok, line)
	case PRICE:
		return p.parsePrice(dateTok, line)
	case EVENT:
		return p.parseEvent(dateTok, line)
	case NOTE:
		return p.parseNote(dateTok, line)
	case DOCUMENT:
		return p.parseDocument(dateTok, line)
	default:
		p.errorf(p.peek(), "expected a directive keyword after date, got %s", p.peek().Kind)
		return nil, false
	}
}
