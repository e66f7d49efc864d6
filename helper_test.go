package bankbook

import (
	"testing"
	"time"

	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build decimals from const strings.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// decP is like dec but returns a pointer, for rule amount bounds.
func decP(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// testTx builds a minimal transaction for tests.
func testTx(account, id, day, amount, memo, payee string) Transaction {
	return Transaction{
		AccountNumber: account,
		ID:            id,
		Date:          date.MustParse(day),
		Memo:          memo,
		Payee:         payee,
		Type:          "DEBIT",
		Amount:        dec(amount),
	}
}

// checking is a one-account statement over the given records.
func checking(records ...StatementTx) Statement {
	return Statement{
		Account:      Account{Number: "1111", Type: "CHECKING", Institution: "First Bank"},
		Transactions: records,
	}
}

// rec builds one statement record.
func rec(id, day, amount, memo, payee string) StatementTx {
	return StatementTx{
		ID:     id,
		Date:   date.MustParse(day),
		Memo:   memo,
		Payee:  payee,
		Type:   "DEBIT",
		Amount: dec(amount),
	}
}

// setupBook builds a Book holding a small imported ledger and a catalog with
// one "Dining" expense label matching coffee memos.
func setupBook(t *testing.T) *Book {
	t.Helper()

	book := NewBook()
	book.Ledger.Import(checking(
		rec("A1", "2023-01-09", "-87.21", "COFFEE SHOP", "CoffeeCo"),
		rec("A2", "2023-01-15", "-12.50", "BURGER PALACE", "Burgers Inc"),
		rec("A3", "2023-02-03", "2500.00", "PAYROLL", "Initech"),
	), ImportOptions{})

	if err := book.CreateLabel(Expenses, "Dining"); err != nil {
		t.Fatalf("CreateLabel(Dining) failed: %v", err)
	}
	if err := book.Catalog.AddRule(Expenses, "Dining", Rule{Name: "coffee", Memo: "coffee"}); err != nil {
		t.Fatalf("AddRule(coffee) failed: %v", err)
	}
	Reconcile(book.Ledger, book.Catalog)
	return book
}

// wantLabels fails the test unless the transaction's auto labels of one kind
// are exactly want.
func wantAutoLabels(t *testing.T, l *Ledger, account, id string, kind Kind, want ...string) {
	t.Helper()
	tx, err := l.Get(account, id)
	if err != nil {
		t.Fatalf("Get(%s, %s) failed: %v", account, id, err)
	}
	got := tx.Auto.Names(kind)
	if len(got) != len(want) {
		t.Fatalf("autoLabels[%s] of (%s, %s) = %v, want %v", kind, account, id, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("autoLabels[%s] of (%s, %s) = %v, want %v", kind, account, id, got, want)
		}
	}
}

// jan9 is the date most tests revolve around.
var jan9 = date.New(2023, time.January, 9)
