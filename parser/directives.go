package parser

// open := DATE OPEN ACCOUNT currency_list eol
func (p *Parser) parseOpen(dateTok Token, line int) (any, bool) {
	p.advance() // OPEN
	account, ok := p.expect(ACCOUNT)
	if !ok {
		return nil, false
	}
	currencies, ok := p.parseCurrencyList()
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	result, err := p.builder.Open(p.filename, line, dateTok.Value, account.Value, currencies)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, line)
		return nil, false
	}
	return result, true
}

// currency_list := /* empty */ | CURRENCY | currency_list COMMA CURRENCY
// A COMMA is required between entries; a COMMA not followed by a
// CURRENCY is a syntax error.
func (p *Parser) parseCurrencyList() ([]any, bool) {
	var currencies []any
	if !p.check(CURRENCY) {
		return currencies, true
	}
	for {
		tok, ok := p.expect(CURRENCY)
		if !ok {
			return nil, false
		}
		currencies = append(currencies, tok.Value)
		if _, ok := p.match(COMMA); !ok {
			break
		}
	}
	return currencies, true
}

// close := DATE CLOSE ACCOUNT eol
func (p *Parser) parseClose(dateTok Token, line int) (any, bool) {
	p.advance() // CLOSE
	account, ok := p.expect(ACCOUNT)
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	result, err := p.builder.Close(p.filename, line, dateTok.Value, account.Value)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, line)
		return nil, false
	}
	return result, true
}

// pad := DATE PAD ACCOUNT ACCOUNT eol
func (p *Parser) parsePad(dateTok Token, line int) (any, bool) {
	p.advance() // PAD
	dest, ok := p.expect(ACCOUNT)
	if !ok {
		return nil, false
	}
	src, ok := p.expect(ACCOUNT)
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	result, err := p.builder.Pad(p.filename, line, dateTok.Value, dest.Value, src.Value)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, line)
		return nil, false
	}
	return result, true
}

// check := DATE CHECK ACCOUNT amount eol
func (p *Parser) parseCheck(dateTok Token, line int) (any, bool) {
	p.advance() // CHECK
	account, ok := p.expect(ACCOUNT)
	if !ok {
		return nil, false
	}
	amount, ok := p.parseAmount()
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	result, err := p.builder.Check(p.filename, line, dateTok.Value, account.Value, amount)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, line)
		return nil, false
	}
	return result, true
}

// price := DATE PRICE CURRENCY amount eol
func (p *Parser) parsePrice(dateTok Token, line int) (any, bool) {
	p.advance() // PRICE
	currency, ok := p.expect(CURRENCY)
	if !ok {
		return nil, false
	}
	amount, ok := p.parseAmount()
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	result, err := p.builder.Price(p.filename, line, dateTok.Value, currency.Value, amount)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, line)
		return nil, false
	}
	return result, true
}

// event := DATE EVENT STRING STRING eol
func (p *Parser) parseEvent(dateTok Token, line int) (any, bool) {
	p.advance() // EVENT
	typ, ok := p.expect(STRING)
	if !ok {
		return nil, false
	}
	description, ok := p.expect(STRING)
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	result, err := p.builder.Event(p.filename, line, dateTok.Value, typ.Value, description.Value)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, line)
		return nil, false
	}
	return result, true
}

// note := DATE NOTE ACCOUNT STRING eol
func (p *Parser) parseNote(dateTok Token, line int) (any, bool) {
	p.advance() // NOTE
	account, ok := p.expect(ACCOUNT)
	if !ok {
		return nil, false
	}
	comment, ok := p.expect(STRING)
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	result, err := p.builder.Note(p.filename, line, dateTok.Value, account.Value, comment.Value)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, line)
		return nil, false
	}
	return result, true
}

// document := DATE DOCUMENT ACCOUNT STRING eol
func (p *Parser) parseDocument(dateTok Token, line int) (any, bool) {
	p.advance() // DOCUMENT
	account, ok := p.expect(ACCOUNT)
	if !ok {
		return nil, false
	}
	path, ok := p.expect(STRING)
	if !ok {
		return nil, false
	}
	if !p.eol() {
		return nil, false
	}
	result, err := p.builder.Document(p.filename, line, dateTok.Value, account.Value, path.Value)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, line)
		return nil, false
	}
	return result, true
}

// amount := NUMBER CURRENCY
func (p *Parser) parseAmount() (any, bool) {
	number, ok := p.expect(NUMBER)
	if !ok {
		return nil, false
	}
	currency, ok := p.expect(CURRENCY)
	if !ok {
		return nil, false
	}
	amount, err := p.builder.Amount(number.Value, currency.Value)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, number.Line)
		return nil, false
	}
	return amount, true
}

// position := amount | amount lot_cost_date
func (p *Parser) parsePosition() (any, bool) {
	amount, ok := p.parseAmount()
	if !ok {
		return nil, false
	}
	var lotCostDate any
	if p.check(LCURL) {
		lotCostDate, ok = p.parseLotCostDate()
		if !ok {
			return nil, false
		}
	}
	position, err := p.builder.Position(amount, lotCostDate)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, p.peek().Line)
		return nil, false
	}
	return position, true
}

// lot_cost_date := LCURL amount RCURL | LCURL amount SLASH DATE RCURL
func (p *Parser) parseLotCostDate() (any, bool) {
	p.advance() // LCURL
	amount, ok := p.parseAmount()
	if !ok {
		return nil, false
	}
	var dateValue any
	if _, ok := p.match(SLASH); ok {
		dateTok, ok := p.expect(DATE)
		if !ok {
			return nil, false
		}
		dateValue = dateTok.Value
	}
	if _, ok := p.expect(RCURL); !ok {
		return nil, false
	}
	lotCostDate, err := p.builder.LotCostDate(amount, dateValue)
	if err != nil {
		p.builder.Error(err.Error(), p.filename, p.peek().Line)
		return nil, false
	}
	return lotCostDate, true
}
