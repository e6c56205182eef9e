package parser

// parseTransaction drives:
//
//	transaction := (TXN | FLAG) STRING [PIPE STRING] tags_list links_list eol posting_list
//
// A single STRING is the narration with no payee; STRING PIPE STRING is
// payee then narration, matching the ordering printed by most ledgers.
func (p *Parser) parseTransaction(dateTok Token, line int) (any, bool) {
	flagTok := p.advance() // TXN or FLAG
	flag := byte('*')
	if flagTok.Kind == FLAG {
		flag = flagTok.Value.(byte)
	}

	first, ok := p.expect(STRING)
	if !ok {
		return nil, false
	}

	var payee, narration any
	if _, ok := p.match(PIPE); ok {
		second, ok := p.expect(STRING)
		if !ok {
			return nil, false
		}
		payee, narration = first.Value, second.Value
	} else {
		narration = first.Value
	}

	tags := p.parseTagsList()
	links := p.parseLinksList()

	if !p.eol() {
		return nil, false
	}

	postings, ok := p.parsePostingList()
	if !ok {
		return nil, false
	}

	result, err := p.builder.Transaction(p.filename, line, dateTok.Value, flag, payee, narration, tags, links, postings)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, line)
		return nil, false
	}
	return result, true
}

// tags_list := /* empty */ | tags_list TAG
func (p *Parser) parseTagsList() []any {
	var tags []any
	for p.check(TAG) {
		tok := p.advance()
		tags = append(tags, tok.Value)
	}
	return tags
}

// links_list := /* empty */ | links_list LINK
func (p *Parser) parseLinksList() []any {
	var links []any
	for p.check(LINK) {
		tok := p.advance()
		links = append(links, tok.Value)
	}
	return links
}

// parsePostingList drives `posting_list := /* empty */ | posting_list
// posting`, consuming consecutive INDENT-led lines. The list ends at the
// first line that does not begin with INDENT; an INDENT-led line that does
// not parse as a posting fails the whole transaction.
func (p *Parser) parsePostingList() ([]any, bool) {
	var postings []any
	for p.check(INDENT) {
		posting, ok := p.parsePosting()
		if !ok {
			return nil, false
		}
		if posting != nil {
			postings = append(postings, posting)
		}
	}
	return postings, true
}

// posting covers the four alternatives:
//
//	INDENT optflag ACCOUNT position eol
//	INDENT optflag ACCOUNT position AT amount eol
//	INDENT optflag ACCOUNT position ATAT amount eol
//	INDENT optflag ACCOUNT eol
func (p *Parser) parsePosting() (any, bool) {
	p.advance() // INDENT

	var flag byte
	if tok, ok := p.match(FLAG); ok {
		flag = tok.Value.(byte)
	}

	account, ok := p.expect(ACCOUNT)
	if !ok {
		return nil, false
	}

	if p.check(EOL) || p.check(EOF) || p.check(COMMENT) {
		if !p.eol() {
			return nil, false
		}
		result, err := p.builder.Posting(account.Value, nil, nil, false, flag)
		if err != nil {
			p.builder.Error(err.Error(), p.filename, account.Line)
			return nil, false
		}
		return result, true
	}

	position, ok := p.parsePosition()
	if !ok {
		return nil, false
	}

	var price any
	var priceIsTotal bool
	switch {
	case p.check(AT):
		p.advance()
		price, ok = p.parseAmount()
		if !ok {
			return nil, false
		}
	case p.check(ATAT):
		p.advance()
		priceIsTotal = true
		price, ok = p.parseAmount()
		if !ok {
			return nil, false
		}
	}

	if !p.eol() {
		return nil, false
	}

	result, err := p.builder.Posting(account.Value, position, price, priceIsTotal, flag)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, account.Line)
		return nil, false
	}
	return result, true
}
