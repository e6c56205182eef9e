// Package ast provides the reference parser.Builder implementation: a set
// of concrete directive and value types, and a Builder that assembles them
// into an ordered declaration list.
package ast

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Date is a calendar date as it appears in ledger source, validated at
// construction time (out-of-range months, days, and non-leap Feb 29s are
// rejected before a Date ever exists).
type Date struct {
	time.Time
}

func newDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month %d out of range", month)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return Date{}, fmt.Errorf("day %d out of range for %04d-%02d", day, year, month)
	}
	return Date{time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}, nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	days := [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return days[month-1]
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// Account is a colon-separated account name, e.g. "Assets:Bank:Checking".
type Account string

// Currency is a commodity symbol, e.g. "USD" or "AAPL".
type Currency string

// Tag is a transaction or pushtag/poptag tag, without its '#' sigil.
type Tag string

// Link is a transaction link, without its '^' sigil.
type Link string

// Amount pairs an exact decimal quantity with its currency. Raw
// preserves the original lexeme alongside the parsed Number so formatting
// code can round-trip trailing zeros the way the source wrote them.
type Amount struct {
	Number   decimal.Decimal
	Raw      string
	Currency Currency
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Raw, a.Currency)
}

// LotCostDate is the optional `{amount}` or `{amount / date}` annotation on
// a posting's position.
type LotCostDate struct {
	Amount Amount
	Date   Date
	HasDate bool
}

// Position is an amount together with an optional lot cost/date.
type Position struct {
	Amount      Amount
	LotCostDate *LotCostDate
}
