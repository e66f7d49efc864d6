package bankbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

// DecodeStatement reads one bank JSON export of the shape
//
//	{"account": {"number": ..., "type": ..., "institutionName": ...},
//	 "transactions": [{"id", "date", "memo", "payee", "type", "amount"}, ...]}
//
// into a Statement. Banks disagree on whether amounts are JSON numbers or
// strings, so both are accepted. OFX/QFX parsing stays with the external
// statement parser; this decoder only covers the JSON export format.
//
// Any malformed record aborts the whole file: a parse failure is propagated,
// not swallowed, so a half-read statement never reaches the ledger.
func DecodeStatement(r io.Reader) (Statement, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return Statement{}, fmt.Errorf("could not decode statement: %w", err)
	}

	var stmt Statement
	var err error
	if stmt.Account.Number, err = jstring(jobj, "$.account.number"); err != nil {
		return Statement{}, err
	}
	if stmt.Account.Type, err = jstring(jobj, "$.account.type"); err != nil {
		return Statement{}, err
	}
	if stmt.Account.Institution, err = jstring(jobj, "$.account.institutionName"); err != nil {
		return Statement{}, err
	}

	jval, err := jsonpath.Get("$.transactions", jobj)
	if err != nil {
		return Statement{}, fmt.Errorf("statement has no transactions array: %w", err)
	}
	records, ok := jval.([]any)
	if !ok {
		return Statement{}, fmt.Errorf("statement transactions is not an array")
	}

	for i, rec := range records {
		tx, err := decodeStatementTx(rec)
		if err != nil {
			return Statement{}, fmt.Errorf("statement transaction %d: %w", i, err)
		}
		stmt.Transactions = append(stmt.Transactions, tx)
	}
	return stmt, nil
}

func decodeStatementTx(rec any) (StatementTx, error) {
	var tx StatementTx
	var err error
	if tx.ID, err = jstring(rec, "$.id"); err != nil {
		return StatementTx{}, err
	}
	dateStr, err := jstring(rec, "$.date")
	if err != nil {
		return StatementTx{}, err
	}
	if tx.Date, err = date.Parse(dateStr); err != nil {
		return StatementTx{}, err
	}
	// memo, payee and type may be absent in some exports.
	tx.Memo, _ = jstring(rec, "$.memo")
	tx.Payee, _ = jstring(rec, "$.payee")
	tx.Type, _ = jstring(rec, "$.type")

	jval, err := jsonpath.Get("$.amount", rec)
	if err != nil {
		return StatementTx{}, fmt.Errorf("transaction has no amount: %w", err)
	}
	switch v := unwrap(jval).(type) {
	case float64:
		tx.Amount = decimal.NewFromFloat(v)
	case string:
		if tx.Amount, err = decimal.NewFromString(v); err != nil {
			return StatementTx{}, fmt.Errorf("invalid amount %q: %w", v, err)
		}
	default:
		return StatementTx{}, fmt.Errorf("amount is neither number nor string: %v", jval)
	}
	return tx, nil
}

// jstring plucks a string value out of a decoded JSON document by path.
func jstring(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error plucking %q: %w", path, err)
	}
	s, ok := unwrap(jval).(string)
	if !ok {
		return "", fmt.Errorf("error plucking %q: not a string: %v", path, jval)
	}
	return s, nil
}

// jsonpath is never clear about whether it returns a list of one answer or a
// single answer; unwrap keeps the first one if any.
func unwrap(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}
