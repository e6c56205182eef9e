package parser

// Builder is the narrow façade the lexer and parser call through to
// materialize host-side values. The core depends only on this interface;
// it never constructs a directive record itself.
//
// Two groups of methods make up the contract:
//
//   - Value constructors are called by the lexer while scanning literal
//     tokens (DATE, ACCOUNT, CURRENCY, STRING, NUMBER, TAG, LINK). They
//     return an opaque value the lexer stores on the Token and the parser
//     later hands back unexamined.
//   - Directive and list constructors are called by the parser when it
//     reduces a production. Every field value they receive is itself
//     opaque, produced by an earlier constructor call.
//
// A constructor may return a non-nil error to signal that the text it was
// given doesn't represent a valid value (an out-of-range date, say); the
// caller reports it through Error and treats the token as ERROR for the
// purposes of error recovery.
//
// Implementations may be backed by a struct, a set of closures, or
// anything else; the parser package never type-asserts a Builder.
type Builder interface {
	// Value constructors, invoked by the lexer.
	MakeDate(year, month, day int, line int) (any, error)
	MakeAccount(text string, line int) (any, error)
	MakeCurrency(text string, line int) (any, error)
	MakeString(text string, line int) (any, error)
	MakeNumber(text string, line int) (any, error)
	MakeTag(text string, line int) (any, error)
	MakeLink(text string, line int) (any, error)

	// Directive and list constructors, invoked by the parser.
	Amount(number, currency any) (any, error)
	Position(amount, lotCostDate any) (any, error)
	LotCostDate(amount, date any) (any, error)
	Posting(account, position, price any, priceIsTotal bool, flag byte) (any, error)
	Transaction(filename string, line int, date any, flag byte, payee, narration any, tags, links, postings []any) (any, error)
	Open(filename string, line int, date, account any, currencies []any) (any, error)
	Close(filename string, line int, date, account any) (any, error)
	Pad(filename string, line int, date, accountDest, accountSrc any) (any, error)
	Check(filename string, line int, date, account, amount any) (any, error)
	Price(filename string, line int, date, currency, amount any) (any, error)
	Event(filename string, line int, date, typ, description any) (any, error)
	Note(filename string, line int, date, account, comment any) (any, error)
	Document(filename string, line int, date, account, path any) (any, error)

	// HandleList appends item to acc, starting from a nil accumulator, and
	// returns the (possibly new) accumulator. Called once per top-level
	// entry as `declarations := declarations entry` reduces (directives such
	// as pushtag, poptag, option and skipped lines are not passed in), so
	// the Builder controls the concrete type of the file's declaration
	// list. Postings, tags, links, and currencies are collected by the
	// parser into plain slices and passed to the relevant directive
	// constructor directly, since those constructors already fix the
	// parameter's shape.
	HandleList(acc, item any) any

	// Side-effecting hooks. None return a meaningful value.
	PushTag(tag any)
	PopTag(tag any)
	Option(name, value any)
	Error(message string, filename string, line int)
	StoreResult(declarations any)
}
