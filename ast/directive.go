package ast

// SourcePosition is the source location of a directive, grounded on spec.md's
// "1-based line/column, directive position is its first token" contract.
type SourcePosition struct {
	Filename string
	Line     int
}

// Posting is one leg of a Transaction.
type Posting struct {
	Account      Account
	Position     *Position // nil for a posting with no amount (elided, to be inferred)
	Price        *Amount
	PriceIsTotal bool
	Flag         byte
}

// Transaction is a dated, flagged, tagged-and-linked list of Postings.
type Transaction struct {
	Pos       SourcePosition
	Date      Date
	Flag      byte
	Payee     string
	Narration string
	Tags      []Tag
	Links     []Link
	Postings  []Posting
}

func (t Transaction) position() SourcePosition { return t.Pos }

// Open declares an account's opening date and, optionally, the currencies
// it may hold.
type Open struct {
	Pos        SourcePosition
	Date       Date
	Account    Account
	Currencies []Currency
}

func (o Open) position() SourcePosition { return o.Pos }

// Close declares an account closed as of Date.
type Close struct {
	Pos     SourcePosition
	Date    Date
	Account Account
}

func (c Close) position() SourcePosition { return c.Pos }

// Pad inserts a balancing posting from Source into Destination.
type Pad struct {
	Pos         SourcePosition
	Date        Date
	Destination Account
	Source      Account
}

func (p Pad) position() SourcePosition { return p.Pos }

// Check asserts an account's balance at Date.
type Check struct {
	Pos     SourcePosition
	Date    Date
	Account Account
	Amount  Amount
}

func (c Check) position() SourcePosition { return c.Pos }

// Price records an exchange rate observation.
type Price struct {
	Pos      SourcePosition
	Date     Date
	Currency Currency
	Amount   Amount
}

func (p Price) position() SourcePosition { return p.Pos }

// Event records a named event's value as of Date.
type Event struct {
	Pos         SourcePosition
	Date        Date
	Type        string
	Description string
}

func (e Event) position() SourcePosition { return e.Pos }

// Note attaches a free-form comment to an account at Date.
type Note struct {
	Pos     SourcePosition
	Date    Date
	Account Account
	Comment string
}

func (n Note) position() SourcePosition { return n.Pos }

// Document links an external file to an account at Date.
type Document struct {
	Pos     SourcePosition
	Date    Date
	Account Account
	Path    string
}

func (d Document) position() SourcePosition { return d.Pos }

// Declaration is any directive the Builder can append to a file's
// declaration list. Its only method is the source position; it has no date
// accessor, so SortDeclarations reads dates through the declarationDate
// type switch, and callers that need a specific directive's fields type
// switch or type assert on the concrete type returned from the Builder.
type Declaration interface {
	position() SourcePosition
}

// declarationDate extracts the directive date, used to sort declarations
// into chronological order with a stable tie-break on declaration order.
func declarationDate(d Declaration) Date {
	switch v := d.(type) {
	case Transaction:
		return v.Date
	case Open:
		return v.Date
	case Close:
		return v.Date
	case Pad:
		return v.Date
	case Check:
		return v.Date
	case Price:
		return v.Date
	case Event:
		return v.Date
	case Note:
		return v.Date
	case Document:
		return v.Date
	default:
		return Date{}
	}
}
