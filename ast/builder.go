package ast

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// number is the opaque value MakeNumber hands back to the parser: the
// parsed decimal plus the raw lexeme, so Amount can preserve the source's
// original formatting (trailing zeros, sign) alongside the exact value.
type number struct {
	value decimal.Decimal
	raw   string
}

// Builder is the reference parser.Builder implementation. It assembles a
// plain-text ledger into an ordered slice of Declaration values, tracks the
// pushtag/poptag stack and applies it to every transaction it builds, and
// records parse errors instead of panicking on them.
type Builder struct {
	Declarations []Declaration
	Options      []Option
	Errors       []Error

	tagStack []Tag
}

// Option is a single `option "name" "value"` directive, kept in the order
// it was seen; later occurrences of the same name do not overwrite earlier
// ones, mirroring how options commonly accumulate (e.g. plugin lists).
type Option struct {
	Name  string
	Value string
}

// Error is one diagnostic recorded through the Builder.Error hook.
type Error struct {
	Message  string
	Filename string
	Line     int
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Filename, e.Line, e.Message)
}

// New returns a ready-to-use Builder.
func New() *Builder {
	return &Builder{}
}

// Value constructors.

func (b *Builder) MakeDate(year, month, day int, line int) (any, error) {
	return newDate(year, month, day)
}

func (b *Builder) MakeAccount(text string, line int) (any, error) {
	return Account(text), nil
}

func (b *Builder) MakeCurrency(text string, line int) (any, error) {
	return Currency(text), nil
}

func (b *Builder) MakeString(text string, line int) (any, error) {
	return text, nil
}

func (b *Builder) MakeNumber(text string, line int) (any, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", text, err)
	}
	return number{value: d, raw: text}, nil
}

func (b *Builder) MakeTag(text string, line int) (any, error) {
	return Tag(text), nil
}

func (b *Builder) MakeLink(text string, line int) (any, error) {
	return Link(text), nil
}

// Directive and list constructors.

func (b *Builder) Amount(numberValue, currencyValue any) (any, error) {
	n := numberValue.(number)
	return Amount{Number: n.value, Raw: n.raw, Currency: currencyValue.(Currency)}, nil
}

func (b *Builder) Position(amountValue, lotCostDateValue any) (any, error) {
	pos := Position{Amount: amountValue.(Amount)}
	if lotCostDateValue != nil {
		lcd := lotCostDateValue.(LotCostDate)
		pos.LotCostDate = &lcd
	}
	return pos, nil
}

func (b *Builder) LotCostDate(amountValue, dateValue any) (any, error) {
	lcd := LotCostDate{Amount: amountValue.(Amount)}
	if dateValue != nil {
		lcd.Date = dateValue.(Date)
		lcd.HasDate = true
	}
	return lcd, nil
}

func (b *Builder) Posting(accountValue, positionValue, priceValue any, priceIsTotal bool, flag byte) (any, error) {
	p := Posting{Account: accountValue.(Account), Flag: flag, PriceIsTotal: priceIsTotal}
	if positionValue != nil {
		pos := positionValue.(Position)
		p.Position = &pos
	}
	if priceValue != nil {
		amt := priceValue.(Amount)
		p.Price = &amt
	}
	return p, nil
}

func (b *Builder) Transaction(filename string, line int, dateValue any, flag byte, payeeValue, narrationValue any, tagValues, linkValues, postingValues []any) (any, error) {
	tx := Transaction{
		Pos:  SourcePosition{Filename: filename, Line: line},
		Date: dateValue.(Date),
		Flag: flag,
	}
	if payeeValue != nil {
		tx.Payee = payeeValue.(string)
	}
	if narrationValue != nil {
		tx.Narration = narrationValue.(string)
	}

	tx.Tags = append(tx.Tags, b.tagStack...)
	for _, v := range tagValues {
		tx.Tags = append(tx.Tags, v.(Tag))
	}
	for _, v := range linkValues {
		tx.Links = append(tx.Links, v.(Link))
	}
	for _, v := range postingValues {
		tx.Postings = append(tx.Postings, v.(Posting))
	}
	return tx, nil
}

func (b *Builder) Open(filename string, line int, dateValue, accountValue any, currencyValues []any) (any, error) {
	o := Open{
		Pos:     SourcePosition{Filename: filename, Line: line},
		Date:    dateValue.(Date),
		Account: accountValue.(Account),
	}
	for _, v := range currencyValues {
		o.Currencies = append(o.Currencies, v.(Currency))
	}
	return o, nil
}

func (b *Builder) Close(filename string, line int, dateValue, accountValue any) (any, error) {
	return Close{
		Pos:     SourcePosition{Filename: filename, Line: line},
		Date:    dateValue.(Date),
		Account: accountValue.(Account),
	}, nil
}

func (b *Builder) Pad(filename string, line int, dateValue, destValue, srcValue any) (any, error) {
	return Pad{
		Pos:         SourcePosition{Filename: filename, Line: line},
		Date:        dateValue.(Date),
		Destination: destValue.(Account),
		Source:      srcValue.(Account),
	}, nil
}

func (b *Builder) Check(filename string, line int, dateValue, accountValue, amountValue any) (any, error) {
	return Check{
		Pos:     SourcePosition{Filename: filename, Line: line},
		Date:    dateValue.(Date),
		Account: accountValue.(Account),
		Amount:  amountValue.(Amount),
	}, nil
}

func (b *Builder) Price(filename string, line int, dateValue, currencyValue, amountValue any) (any, error) {
	return Price{
		Pos:      SourcePosition{Filename: filename, Line: line},
		Date:     dateValue.(Date),
		Currency: currencyValue.(Currency),
		Amount:   amountValue.(Amount),
	}, nil
}

func (b *Builder) Event(filename string, line int, dateValue, typeValue, descriptionValue any) (any, error) {
	return Event{
		Pos:         SourcePosition{Filename: filename, Line: line},
		Date:        dateValue.(Date),
		Type:        typeValue.(string),
		Description: descriptionValue.(string),
	}, nil
}

func (b *Builder) Note(filename string, line int, dateValue, accountValue, commentValue any) (any, error) {
	return Note{
		Pos:     SourcePosition{Filename: filename, Line: line},
		Date:    dateValue.(Date),
		Account: accountValue.(Account),
		Comment: commentValue.(string),
	}, nil
}

func (b *Builder) Document(filename string, line int, dateValue, accountValue, pathValue any) (any, error) {
	return Document{
		Pos:     SourcePosition{Filename: filename, Line: line},
		Date:    dateValue.(Date),
		Account: accountValue.(Account),
		Path:    pathValue.(string),
	}, nil
}

// HandleList accumulates top-level declarations into a []Declaration,
// starting from a nil acc.
func (b *Builder) HandleList(acc, item any) any {
	var list []Declaration
	if acc != nil {
		list = acc.([]Declaration)
	}
	return append(list, item.(Declaration))
}

// Side-effecting hooks.

func (b *Builder) PushTag(tagValue any) {
	b.tagStack = append(b.tagStack, tagValue.(Tag))
}

func (b *Builder) PopTag(tagValue any) {
	tag := tagValue.(Tag)
	for i := len(b.tagStack) - 1; i >= 0; i-- {
		if b.tagStack[i] == tag {
			b.tagStack = append(b.tagStack[:i], b.tagStack[i+1:]...)
			return
		}
	}
}

func (b *Builder) Option(nameValue, valueValue any) {
	b.Options = append(b.Options, Option{Name: nameValue.(string), Value: valueValue.(string)})
}

func (b *Builder) Error(message string, filename string, line int) {
	b.Errors = append(b.Errors, Error{Message: message, Filename: filename, Line: line})
}

func (b *Builder) StoreResult(declarations any) {
	if declarations == nil {
		return
	}
	b.Declarations = declarations.([]Declaration)
}

// SortDeclarations orders decls chronologically by date, preserving the
// relative order of declarations that share a date.
func SortDeclarations(decls []Declaration) {
	slices.SortStableFunc(decls, func(a, b Declaration) int {
		return declarationDate(a).Compare(declarationDate(b).Time)
	})
}
