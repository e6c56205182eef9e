package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestMakeDateValidatesCalendar(t *testing.T) {
	b := New()

	_, err := b.MakeDate(2024, 2, 29, 1) // 2024 is a leap year
	assert.NoError(t, err)

	_, err = b.MakeDate(2023, 2, 29, 1) // 2023 is not
	assert.Error(t, err)

	_, err = b.MakeDate(2024, 13, 1, 1)
	assert.Error(t, err)

	_, err = b.MakeDate(2024, 4, 31, 1) // April has 30 days
	assert.Error(t, err)
}

func TestMakeNumberPreservesRawLexeme(t *testing.T) {
	b := New()
	v, err := b.MakeNumber("150.00", 1)
	assert.NoError(t, err)
	n := v.(number)
	assert.Equal(t, "150.00", n.raw)
	assert.True(t, n.value.Equal(n.value))
}

func TestMakeNumberRejectsGarbage(t *testing.T) {
	b := New()
	_, err := b.MakeNumber("not-a-number", 1)
	assert.Error(t, err)
}

func TestPushPopTagAffectsSubsequentTransactions(t *testing.T) {
	b := New()

	b.PushTag(Tag("trip"))
	tx1, err := b.Transaction("f", 1, mustDate(b, 2024, 1, 1), '*', nil, "first", nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, []Tag{"trip"}, tx1.(Transaction).Tags)

	b.PopTag(Tag("trip"))
	tx2, err := b.Transaction("f", 2, mustDate(b, 2024, 1, 2), '*', nil, "second", nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(tx2.(Transaction).Tags))
}

func TestPopTagRemovesMostRecentMatchingPush(t *testing.T) {
	b := New()
	b.PushTag(Tag("a"))
	b.PushTag(Tag("b"))
	b.PopTag(Tag("a"))

	tx, err := b.Transaction("f", 1, mustDate(b, 2024, 1, 1), '*', nil, "x", nil, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, []Tag{"b"}, tx.(Transaction).Tags)
}

func TestHandleListAccumulates(t *testing.T) {
	b := New()
	open := Open{Account: "Assets:Cash"}

	acc := b.HandleList(nil, open)
	acc = b.HandleList(acc, Close{Account: "Assets:Cash"})

	list := acc.([]Declaration)
	assert.Equal(t, 2, len(list))
}

func TestSortDeclarationsOrdersByDate(t *testing.T) {
	early, _ := newDate(2024, 1, 1)
	late, _ := newDate(2024, 6, 1)

	decls := []Declaration{
		Close{Date: late, Account: "Assets:Cash"},
		Open{Date: early, Account: "Assets:Cash"},
	}
	SortDeclarations(decls)

	_, ok := decls[0].(Open)
	assert.True(t, ok, "earlier date should sort first")
}

func TestErrorRecordsMessageFilenameLine(t *testing.T) {
	b := New()
	b.Error("boom", "f.ledger", 7)
	assert.Equal(t, 1, len(b.Errors))
	assert.Equal(t, "f.ledger:7: boom", b.Errors[0].Error())
}

func mustDate(b *Builder, year, month, day int) any {
	v, err := b.MakeDate(year, month, day, 1)
	if err != nil {
		panic(err)
	}
	return v
}
