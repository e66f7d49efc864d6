package bankbook

import (
	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

// Statement is the shape the external statement parser hands to the ledger:
// one account and its parsed transaction records for one file.
type Statement struct {
	Account      Account
	Transactions []StatementTx
}

// StatementTx is one parsed transaction record from a statement file.
type StatementTx struct {
	ID     string
	Date   date.Date
	Memo   string
	Payee  string
	Type   string
	Amount decimal.Decimal
}

// ImportStats reports what one import pass did, for caller display.
type ImportStats struct {
	AccountsAdded       int
	TransactionsAdded   int
	TransactionsIgnored int
}

// Add accumulates stats across several statements.
func (s *ImportStats) Add(o ImportStats) {
	s.AccountsAdded += o.AccountsAdded
	s.TransactionsAdded += o.TransactionsAdded
	s.TransactionsIgnored += o.TransactionsIgnored
}

// ImportOptions controls import policy.
type ImportOptions struct {
	// NoDedupeAmountDay disables the duplicate-by-amount-and-day
	// heuristic. The heuristic exists for one upstream migration where
	// the bank changed the length of its transaction ids without changing
	// any other field; it can falsely suppress a legitimate same-day
	// same-amount transaction from a different merchant, so it is a
	// policy switch, not part of identity-key dedup.
	NoDedupeAmountDay bool
}

// Import merges one parsed statement into the ledger. The account is
// registered on first sighting. Each record is independent: a record already
// present (by identity key, or flagged by the amount-and-day heuristic) is
// counted as ignored and skipped, never an error.
func (l *Ledger) Import(stmt Statement, opts ImportOptions) ImportStats {
	var stats ImportStats
	if l.addAccount(stmt.Account) {
		stats.AccountsAdded++
	}
	for _, rec := range stmt.Transactions {
		if !opts.NoDedupeAmountDay && l.looksLikeRekeyedDuplicate(stmt.Account.Number, rec) {
			stats.TransactionsIgnored++
			continue
		}
		if _, ok := l.transactions[Key{Account: stmt.Account.Number, ID: rec.ID}]; ok {
			stats.TransactionsIgnored++
			continue
		}
		l.Upsert(Transaction{
			AccountNumber: stmt.Account.Number,
			ID:            rec.ID,
			Date:          rec.Date,
			Memo:          rec.Memo,
			Payee:         rec.Payee,
			Type:          rec.Type,
			Amount:        rec.Amount,
		})
		stats.TransactionsAdded++
	}
	return stats
}

// looksLikeRekeyedDuplicate reports whether an existing transaction on the
// same account and calendar day has the same amount but an external id of a
// different string length than the incoming record. Such a record is almost
// certainly the same transaction re-exported under the bank's new id format.
// Evaluated before the identity-key check.
func (l *Ledger) looksLikeRekeyedDuplicate(account string, rec StatementTx) bool {
	for _, tx := range l.transactions {
		if tx.AccountNumber != account || tx.Date != rec.Date {
			continue
		}
		if tx.Amount.Equal(rec.Amount) && len(tx.ID) != len(rec.ID) {
			return true
		}
	}
	return false
}
