package bankbook

import (
	"fmt"
	"strings"

	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

// Rule is a named predicate owned by a label. A transaction that satisfies
// every populated field of a rule is given the rule's label on the next
// reconciliation pass.
//
// Amount bounds are pointers so that an absent bound is distinguishable from
// a bound of zero.
type Rule struct {
	Name       string
	StartDate  date.Date
	EndDate    date.Date
	Memo       string
	MemoExact  bool
	Payee      string
	PayeeExact bool
	AmountMin  *decimal.Decimal
	AmountMax  *decimal.Decimal
	Type       string

	// Presentation hints carried along with the rule.
	Color string
	Alias string
}

// Validate rejects rules the engine refuses to evaluate: a rule needs a name,
// and at least one of the memo, payee or amount predicates. A rule with none
// of those would match every transaction.
func (r Rule) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: rule name must not be empty", ErrInvalidInput)
	}
	if r.Memo == "" && r.Payee == "" && r.AmountMin == nil && r.AmountMax == nil {
		return fmt.Errorf("%w: rule %q has no memo, payee or amount predicate", ErrInvalidInput, r.Name)
	}
	return nil
}

// Matches reports whether the transaction satisfies every populated
// predicate of the rule. Evaluation short-circuits on the first failing
// predicate. Text matching is case-insensitive: exact fields require full
// equality, non-exact fields require substring containment.
func (r Rule) Matches(tx Transaction) bool {
	if !r.StartDate.IsZero() && tx.Date.Before(r.StartDate) {
		return false
	}
	if !r.EndDate.IsZero() && tx.Date.After(r.EndDate) {
		return false
	}
	if r.Memo != "" && !matchText(tx.Memo, r.Memo, r.MemoExact) {
		return false
	}
	if r.Payee != "" && !matchText(tx.Payee, r.Payee, r.PayeeExact) {
		return false
	}
	if r.AmountMin != nil && tx.Amount.LessThan(*r.AmountMin) {
		return false
	}
	if r.AmountMax != nil && tx.Amount.GreaterThan(*r.AmountMax) {
		return false
	}
	if r.Type != "" && tx.Type != r.Type {
		return false
	}
	return true
}

func matchText(have, want string, exact bool) bool {
	if exact {
		return strings.EqualFold(have, want)
	}
	return strings.Contains(strings.ToLower(have), strings.ToLower(want))
}
