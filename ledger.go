package bankbook

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Ledger is the authoritative store of accounts and transactions. It is a
// plain in-memory structure persisted as a whole-file snapshot; all mutation
// happens synchronously from one control flow, so no locking lives here.
type Ledger struct {
	accounts     map[string]Account
	transactions map[Key]*Transaction
	order        []Key // insertion order, the tie-break for equal dates
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts:     make(map[string]Account),
		transactions: make(map[Key]*Transaction),
	}
}

// Accounts returns all known accounts sorted by number.
func (l *Ledger) Accounts() []Account {
	accounts := make([]Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		accounts = append(accounts, a)
	}
	slices.SortFunc(accounts, func(a, b Account) int {
		return strings.Compare(a.Number, b.Number)
	})
	return accounts
}

// Account returns the account with the given number.
func (l *Ledger) Account(number string) (Account, error) {
	a, ok := l.accounts[number]
	if !ok {
		return Account{}, fmt.Errorf("%w: account %q", ErrNotFound, number)
	}
	return a, nil
}

// SetAccountAlias sets the display alias of an account.
func (l *Ledger) SetAccountAlias(number, alias string) error {
	a, ok := l.accounts[number]
	if !ok {
		return fmt.Errorf("%w: account %q", ErrNotFound, number)
	}
	a.Alias = alias
	l.accounts[number] = a
	return nil
}

// addAccount registers an account if its number is not known yet, and
// reports whether it was added.
func (l *Ledger) addAccount(a Account) bool {
	if _, ok := l.accounts[a.Number]; ok {
		return false
	}
	l.accounts[a.Number] = a
	return true
}

// Upsert stores the transaction, replacing any existing transaction with the
// same identity key.
func (l *Ledger) Upsert(tx Transaction) {
	key := tx.Key()
	if _, ok := l.transactions[key]; !ok {
		l.order = append(l.order, key)
	}
	l.transactions[key] = &tx
}

// Get returns a copy of the transaction with the given identity key.
func (l *Ledger) Get(account, id string) (Transaction, error) {
	tx, ok := l.transactions[Key{Account: account, ID: id}]
	if !ok {
		return Transaction{}, fmt.Errorf("%w: transaction (%s, %s)", ErrNotFound, account, id)
	}
	return *tx, nil
}

// Len returns the number of stored transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// all returns pointers to every stored transaction, date-sorted with ties
// broken by insertion order. Internal mutating passes iterate this.
func (l *Ledger) all() []*Transaction {
	txs := make([]*Transaction, 0, len(l.order))
	for _, key := range l.order {
		txs = append(txs, l.transactions[key])
	}
	slices.SortStableFunc(txs, func(a, b *Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	return txs
}

// collect copies the transactions accepted by keep, date-sorted with ties
// broken by stable store order.
func (l *Ledger) collect(keep func(*Transaction) bool) []Transaction {
	var txs []Transaction
	for _, tx := range l.all() {
		if keep(tx) {
			txs = append(txs, *tx)
		}
	}
	return txs
}

// All returns every transaction ordered by date.
func (l *Ledger) All() []Transaction {
	return l.collect(func(*Transaction) bool { return true })
}

// ByAccount returns the transactions of one account ordered by date.
func (l *Ledger) ByAccount(account string) []Transaction {
	return l.collect(func(tx *Transaction) bool { return tx.AccountNumber == account })
}

// ByYear returns the transactions of one account in a given year.
func (l *Ledger) ByYear(account string, year int) []Transaction {
	return l.collect(func(tx *Transaction) bool {
		return tx.AccountNumber == account && tx.Date.Year() == year
	})
}

// ByMonth returns the transactions of one account in a given month.
func (l *Ledger) ByMonth(account string, year, month int) ([]Transaction, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: invalid month %d", ErrInvalidInput, month)
	}
	return l.collect(func(tx *Transaction) bool {
		return tx.AccountNumber == account && tx.Date.Year() == year && tx.Date.Month() == time.Month(month)
	}), nil
}

// ByDay returns the transactions of one account on a given calendar day.
func (l *Ledger) ByDay(account string, year, month, day int) ([]Transaction, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: invalid month %d", ErrInvalidInput, month)
	}
	if day < 1 || day > 31 {
		return nil, fmt.Errorf("%w: invalid day %d", ErrInvalidInput, day)
	}
	return l.collect(func(tx *Transaction) bool {
		return tx.AccountNumber == account &&
			tx.Date.Year() == year && tx.Date.Month() == time.Month(month) && tx.Date.Day() == day
	}), nil
}

// WithLabel returns every transaction carrying the label in its combined
// auto+manual set, ordered by date.
func (l *Ledger) WithLabel(label string) []Transaction {
	return l.collect(func(tx *Transaction) bool { return tx.HasLabel(label) })
}

// DatesWithActivity returns, per year, the months that have at least one
// transaction. With an empty account it aggregates over all accounts. The
// month lists are sorted. UI date pickers are built from this.
func (l *Ledger) DatesWithActivity(account string) map[int][]time.Month {
	seen := make(map[int]map[time.Month]bool)
	for _, tx := range l.transactions {
		if account != "" && tx.AccountNumber != account {
			continue
		}
		y := tx.Date.Year()
		if seen[y] == nil {
			seen[y] = make(map[time.Month]bool)
		}
		seen[y][tx.Date.Month()] = true
	}
	dates := make(map[int][]time.Month, len(seen))
	for y, months := range seen {
		for m := range months {
			dates[y] = append(dates[y], m)
		}
		slices.Sort(dates[y])
	}
	return dates
}

// AddManualLabel applies a label by hand to one transaction. Applying a
// label that is already present, auto or manual, under that kind is a no-op:
// a label string appears at most once per kind-list per transaction.
func (l *Ledger) AddManualLabel(account, id string, kind Kind, label string) error {
	tx, ok := l.transactions[Key{Account: account, ID: id}]
	if !ok {
		return fmt.Errorf("%w: transaction (%s, %s)", ErrNotFound, account, id)
	}
	if tx.Auto.Has(kind, label) || tx.Manual.Has(kind, label) {
		return nil
	}
	tx.Manual = tx.Manual.With(kind, label)
	return nil
}

// RemoveManualLabel removes a hand-applied label from one transaction, every
// kind. Auto labels are untouched: they are owned by the reconciler.
func (l *Ledger) RemoveManualLabel(account, id, label string) error {
	tx, ok := l.transactions[Key{Account: account, ID: id}]
	if !ok {
		return fmt.Errorf("%w: transaction (%s, %s)", ErrNotFound, account, id)
	}
	tx.Manual = tx.Manual.Without(label)
	return nil
}

// RemoveLabel removes a label from every transaction's manual lists and
// splits. Auto labels are left to the next reconciliation pass, which no
// longer finds the label in the catalog and therefore never re-adds it.
func (l *Ledger) RemoveLabel(label string) {
	for _, tx := range l.transactions {
		tx.Manual = tx.Manual.Without(label)
		delete(tx.Splits, label)
	}
}

// RenameLabel renames a label in every transaction's manual lists and splits.
func (l *Ledger) RenameLabel(old, new string) {
	for _, tx := range l.transactions {
		tx.Manual = tx.Manual.Renamed(old, new)
		if amt, ok := tx.Splits[old]; ok {
			delete(tx.Splits, old)
			tx.Splits[new] = amt
		}
	}
}
