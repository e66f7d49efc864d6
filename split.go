package bankbook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SetSplit apportions part of a transaction's amount to one of its labels.
// The label must be present in the transaction's combined auto+manual label
// set. A non-positive amount clears the split entry instead of storing it
// (zeroing is how the user removes a split).
//
// The sum of a transaction's splits is allowed to exceed its absolute
// amount: "remaining >= 0" is a soft warning owned by the caller, not a
// stored constraint.
func (l *Ledger) SetSplit(account, id, label string, amount decimal.Decimal) error {
	tx, ok := l.transactions[Key{Account: account, ID: id}]
	if !ok {
		return fmt.Errorf("%w: transaction (%s, %s)", ErrNotFound, account, id)
	}
	if !tx.HasLabel(label) {
		return fmt.Errorf("%w: transaction (%s, %s) does not carry label %q", ErrUnknownLabel, account, id, label)
	}
	if amount.Sign() <= 0 {
		delete(tx.Splits, label)
		return nil
	}
	if tx.Splits == nil {
		tx.Splits = make(map[string]decimal.Decimal)
	}
	tx.Splits[label] = amount
	return nil
}

// ValidateSplits drops every split entry whose label is no longer in the
// transaction's combined label set. It runs after any label-removing
// operation and at the end of each reconciliation pass; split keys are a
// subset of the label set only at these checkpoints, not on every write.
func (l *Ledger) ValidateSplits(account, id string) error {
	tx, ok := l.transactions[Key{Account: account, ID: id}]
	if !ok {
		return fmt.Errorf("%w: transaction (%s, %s)", ErrNotFound, account, id)
	}
	validateSplits(tx)
	return nil
}

func validateSplits(tx *Transaction) {
	for label := range tx.Splits {
		if !tx.HasLabel(label) {
			delete(tx.Splits, label)
		}
	}
}
