package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/rskl/bankbook"
	"github.com/shopspring/decimal"
)

// Transactions is the view model of a transaction listing.
type Transactions struct {
	Title string
	Rows  []TransactionRow
}

// TransactionRow is one listed transaction, every field pre-formatted.
type TransactionRow struct {
	Date   string
	ID     string
	Name   string
	Memo   string
	Type   string
	Amount string
	Labels string
}

// NewTransactions builds the listing view over a slice of transactions.
func NewTransactions(title, currency string, txs []bankbook.Transaction) *Transactions {
	v := &Transactions{Title: title}
	for _, tx := range txs {
		v.Rows = append(v.Rows, TransactionRow{
			Date:   tx.Date.String(),
			ID:     tx.ID,
			Name:   tx.DisplayName(),
			Memo:   tx.Memo,
			Type:   tx.Type,
			Amount: formatMoney(tx.Amount, currency),
			Labels: strings.Join(tx.Labels(), ", "),
		})
	}
	return v
}

// Accounts is the view model of the account listing.
type Accounts struct {
	Rows []AccountRow
}

// AccountRow is one listed account.
type AccountRow struct {
	Number      string
	Name        string
	Type        string
	Institution string
}

// NewAccounts builds the account listing view.
func NewAccounts(accounts []bankbook.Account) *Accounts {
	v := &Accounts{}
	for _, a := range accounts {
		v.Rows = append(v.Rows, AccountRow{
			Number:      a.Number,
			Name:        a.DisplayName(),
			Type:        a.Type,
			Institution: a.Institution,
		})
	}
	return v
}

// Labels is the view model of the label catalog listing.
type Labels struct {
	Groups []LabelGroup
}

// LabelGroup lists the labels of one kind, each with its rule count.
type LabelGroup struct {
	Kind   string
	Labels []LabelRow
}

// LabelRow is one listed label.
type LabelRow struct {
	Name  string
	Rules int
}

// NewLabels builds the catalog listing view.
func NewLabels(c *bankbook.Catalog) *Labels {
	v := &Labels{}
	for _, kind := range bankbook.Kinds {
		group := LabelGroup{Kind: kind.String()}
		for _, name := range c.Labels(kind) {
			group.Labels = append(group.Labels, LabelRow{Name: name, Rules: len(c.Rules(kind, name))})
		}
		v.Groups = append(v.Groups, group)
	}
	return v
}

// Budget is the view model of a monthly budget table.
type Budget struct {
	Month     string
	PrevMonth string
	Rows      []BudgetRow
}

// BudgetRow is one budget line, every amount pre-formatted. Overspent marks
// lines whose remaining amount went negative.
type BudgetRow struct {
	Label         string
	Monthly       string
	Spent         string
	Remaining     string
	PrevSpent     string
	PrevRemaining string
	Overspent     bool
}

// NewBudget builds the budget view for one month.
func NewBudget(currency string, year int, month time.Month, lines []bankbook.BudgetLine) *Budget {
	prev := month - 1
	prevYear := year
	if prev < time.January {
		prev = time.December
		prevYear--
	}
	v := &Budget{
		Month:     fmt.Sprintf("%s %d", month, year),
		PrevMonth: fmt.Sprintf("%s %d", prev, prevYear),
	}
	for _, line := range lines {
		v.Rows = append(v.Rows, BudgetRow{
			Label:         line.Label,
			Monthly:       formatMoney(line.Monthly, currency),
			Spent:         formatMoney(line.Spent, currency),
			Remaining:     formatMoney(line.Remaining, currency),
			PrevSpent:     formatMoney(line.PrevSpent, currency),
			PrevRemaining: formatMoney(line.PrevRemaining, currency),
			Overspent:     line.Remaining.IsNegative(),
		})
	}
	return v
}

// Trend is the view model of a label trend report.
type Trend struct {
	Label  string
	Count  int
	Total  string
	Median string
	Min    string
	Max    string
	Months []TrendMonthRow
}

// TrendMonthRow is one month's bucket with a text bar scaled against the
// largest month.
type TrendMonthRow struct {
	Month string
	Total string
	Bar   string
}

// trendBarWidth is the width of the largest month's bar.
const trendBarWidth = 40

// NewTrend builds the trend view.
func NewTrend(currency string, t bankbook.Trend) *Trend {
	v := &Trend{
		Label:  t.Label,
		Count:  t.Count,
		Total:  formatMoney(t.Total, currency),
		Median: formatMoney(t.Median, currency),
		Min:    formatMoney(t.Min, currency),
		Max:    formatMoney(t.Max, currency),
	}
	peak := decimal.Zero
	for _, m := range t.Months {
		if m.Total.GreaterThan(peak) {
			peak = m.Total
		}
	}
	for _, m := range t.Months {
		width := 0
		if peak.IsPositive() {
			width = int(m.Total.Div(peak).Mul(decimal.NewFromInt(trendBarWidth)).IntPart())
		}
		v.Months = append(v.Months, TrendMonthRow{
			Month: fmt.Sprintf("%d-%02d", m.Year, int(m.Month)),
			Total: formatMoney(m.Total, currency),
			Bar:   strings.Repeat("#", width),
		})
	}
	return v
}
