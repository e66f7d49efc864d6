package bankbook

import (
	"slices"
	"strings"

	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

// Key is the identity of a transaction: the account it belongs to and the
// external id the bank assigned to it.
type Key struct {
	Account string
	ID      string
}

// LabelSet holds label names grouped by kind. The lists are kept sorted.
//
// LabelSet values are treated as immutable: every operation returns a new
// value instead of mutating in place, so a Transaction snapshot handed to a
// read-model never changes under it.
type LabelSet struct {
	Bills    []string `json:"bills,omitempty"`
	Expenses []string `json:"expenses,omitempty"`
	Incomes  []string `json:"incomes,omitempty"`
}

// Names returns the label names of one kind.
func (s LabelSet) Names(kind Kind) []string {
	switch kind {
	case Bills:
		return s.Bills
	case Expenses:
		return s.Expenses
	default:
		return s.Incomes
	}
}

// Has reports whether the name is present under the given kind.
func (s LabelSet) Has(kind Kind, name string) bool {
	return slices.Contains(s.Names(kind), name)
}

// HasAny reports whether the name is present under any kind.
func (s LabelSet) HasAny(name string) bool {
	for _, k := range Kinds {
		if s.Has(k, name) {
			return true
		}
	}
	return false
}

// All returns every label name in the set, over all kinds.
func (s LabelSet) All() []string {
	var all []string
	for _, k := range Kinds {
		all = append(all, s.Names(k)...)
	}
	return all
}

// With returns a copy of the set with the name added under the given kind.
// Adding an already-present name is a no-op.
func (s LabelSet) With(kind Kind, name string) LabelSet {
	if s.Has(kind, name) {
		return s
	}
	names := slices.Clone(s.Names(kind))
	names = append(names, name)
	slices.Sort(names)
	return s.replace(kind, names)
}

// Without returns a copy of the set with the name removed from every kind.
func (s LabelSet) Without(name string) LabelSet {
	for _, k := range Kinds {
		if s.Has(k, name) {
			s = s.replace(k, slices.DeleteFunc(slices.Clone(s.Names(k)), func(n string) bool { return n == name }))
		}
	}
	return s
}

// Renamed returns a copy of the set with every occurrence of old replaced by new.
func (s LabelSet) Renamed(old, new string) LabelSet {
	for _, k := range Kinds {
		if s.Has(k, old) {
			trimmed := slices.DeleteFunc(slices.Clone(s.Names(k)), func(n string) bool { return n == old })
			s = s.replace(k, trimmed).With(k, new)
		}
	}
	return s
}

// IsZero reports whether the set holds no label at all.
func (s LabelSet) IsZero() bool {
	return len(s.Bills) == 0 && len(s.Expenses) == 0 && len(s.Incomes) == 0
}

func (s LabelSet) replace(kind Kind, names []string) LabelSet {
	if len(names) == 0 {
		names = nil
	}
	switch kind {
	case Bills:
		s.Bills = names
	case Expenses:
		s.Expenses = names
	default:
		s.Incomes = names
	}
	return s
}

// Transaction is one bank transaction as stored in the ledger. Identity is
// the (AccountNumber, ID) pair; everything else is payload.
type Transaction struct {
	AccountNumber string                     `json:"accountNumber"`
	ID            string                     `json:"id"`
	Date          date.Date                  `json:"date"`
	Memo          string                     `json:"memo"`
	Payee         string                     `json:"payee"`
	Type          string                     `json:"txType"`
	Amount        decimal.Decimal            `json:"amount"`
	Auto          LabelSet                   `json:"autoLabels,omitzero"`
	Manual        LabelSet                   `json:"manualLabels,omitzero"`
	Splits        map[string]decimal.Decimal `json:"splits,omitempty"`
	Alias         string                     `json:"alias,omitempty"`
}

// Key returns the identity key of the transaction.
func (t Transaction) Key() Key { return Key{Account: t.AccountNumber, ID: t.ID} }

// HasLabel reports whether the label appears in the combined auto+manual
// label set, any kind.
func (t Transaction) HasLabel(name string) bool {
	return t.Auto.HasAny(name) || t.Manual.HasAny(name)
}

// Labels returns the combined auto+manual label names, deduplicated and sorted.
func (t Transaction) Labels() []string {
	all := append(t.Auto.All(), t.Manual.All()...)
	slices.Sort(all)
	return slices.Compact(all)
}

// DisplayName returns the rule-provided alias if one was applied, else the payee.
func (t Transaction) DisplayName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Payee
}

// SplitOrAbs returns the transaction's contribution to a label: its split
// amount when split, else its full absolute amount. This is the read the
// budget and trend models use, so a transaction split across several budget
// lines is not double-counted.
func (t Transaction) SplitOrAbs(label string) decimal.Decimal {
	if amt, ok := t.Splits[label]; ok {
		return amt.Abs()
	}
	return t.Amount.Abs()
}

// sortKeyFold is the case-insensitive collation used for label listings.
func sortKeyFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
