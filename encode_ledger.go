package bankbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The snapshot is a stream of JSONL records: every account first, then every
// transaction in canonical (date-sorted) order. A "record" field on each
// line tells the decoder what it is looking at.
const (
	recAccount     = "account"
	recTransaction = "transaction"
)

type accountLine struct {
	Record string `json:"record"`
	Account
}

type transactionLine struct {
	Record string `json:"record"`
	Transaction
}

// EncodeLedger writes the whole ledger snapshot to w in JSONL format.
// Output is canonical: accounts sorted by number, transactions sorted by
// date with stable store order breaking ties.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	for _, a := range l.Accounts() {
		if err := enc.Encode(accountLine{Record: recAccount, Account: a}); err != nil {
			return fmt.Errorf("failed to encode account %q: %w", a.Number, err)
		}
	}
	for _, tx := range l.all() {
		if err := enc.Encode(transactionLine{Record: recTransaction, Transaction: *tx}); err != nil {
			return fmt.Errorf("failed to encode transaction (%s, %s): %w", tx.AccountNumber, tx.ID, err)
		}
	}
	return nil
}

// DecodeLedger reads a JSONL snapshot from r and rebuilds the ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}
		switch identifier.Record {
		case recAccount:
			var rec accountLine
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, fmt.Errorf("could not decode account line: %w", err)
			}
			ledger.addAccount(rec.Account)
		case recTransaction:
			var rec transactionLine
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, fmt.Errorf("could not decode transaction line: %w", err)
			}
			ledger.Upsert(rec.Transaction)
		default:
			return nil, fmt.Errorf("unknown snapshot record type: %q", identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading snapshot: %w", err)
	}
	return ledger, nil
}
