package bankbook

import (
	"slices"
	"time"

	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

// Budgets maps a label name to its monthly budget amount. Budgets are plain
// user configuration; they follow label renames and removals through the
// Book cascades.
type Budgets map[string]decimal.Decimal

// Set stores the monthly budget for a label. A non-positive amount removes
// the budget line.
func (b Budgets) Set(label string, monthly decimal.Decimal) {
	if monthly.Sign() <= 0 {
		delete(b, label)
		return
	}
	b[label] = monthly
}

// Rename moves a budget line to a new label name.
func (b Budgets) Rename(old, new string) {
	if amount, ok := b[old]; ok {
		delete(b, old)
		b[new] = amount
	}
}

// Remove drops the budget line of a label.
func (b Budgets) Remove(label string) { delete(b, label) }

// Labels returns the budgeted label names, sorted case-insensitively.
func (b Budgets) Labels() []string {
	labels := make([]string, 0, len(b))
	for label := range b {
		labels = append(labels, label)
	}
	slices.SortFunc(labels, sortKeyFold)
	return labels
}

// BudgetLine is the budget read-model for one label and one month: how much
// of the monthly budget was spent and what remains. The previous month's
// numbers ride along for display.
type BudgetLine struct {
	Label         string
	Monthly       decimal.Decimal
	Spent         decimal.Decimal
	Remaining     decimal.Decimal
	PrevSpent     decimal.Decimal
	PrevRemaining decimal.Decimal
}

// MonthlySpend sums, over the label's transactions in the given month, each
// transaction's contribution: its split amount for the label when split,
// else its full absolute amount. Pure query, no store mutation.
func MonthlySpend(l *Ledger, label string, year int, month time.Month) decimal.Decimal {
	spent := decimal.Zero
	for _, tx := range l.WithLabel(label) {
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		spent = spent.Add(tx.SplitOrAbs(label))
	}
	return spent
}

// BudgetReport computes the budget line of one label for one month.
func BudgetReport(l *Ledger, budgets Budgets, label string, year int, month time.Month) BudgetLine {
	monthly := budgets[label]
	prev := date.New(year, month, 1).AddMonths(-1)
	spent := MonthlySpend(l, label, year, month)
	prevSpent := MonthlySpend(l, label, prev.Year(), prev.Month())
	return BudgetLine{
		Label:         label,
		Monthly:       monthly,
		Spent:         spent,
		Remaining:     monthly.Sub(spent),
		PrevSpent:     prevSpent,
		PrevRemaining: monthly.Sub(prevSpent),
	}
}

// BudgetTable computes the budget lines of every budgeted label for one
// month, sorted by label.
func BudgetTable(l *Ledger, budgets Budgets, year int, month time.Month) []BudgetLine {
	lines := make([]BudgetLine, 0, len(budgets))
	for _, label := range budgets.Labels() {
		lines = append(lines, BudgetReport(l, budgets, label, year, month))
	}
	return lines
}
