package bankbook

import (
	"slices"
	"time"

	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

// MonthBucket is one calendar month's total contribution to a label.
type MonthBucket struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
}

// Trend aggregates a label's activity: summary statistics over the absolute
// per-transaction contributions, and a per-month bucketed total spanning
// every month from the earliest to the latest matching transaction,
// including empty months in between.
type Trend struct {
	Label  string
	Count  int
	Total  decimal.Decimal
	Median decimal.Decimal
	Min    decimal.Decimal
	Max    decimal.Decimal
	Months []MonthBucket
}

// TrendReport computes the trend of a label over an optional date range
// (a zero Range means the label's whole activity span). Pure query.
func TrendReport(l *Ledger, label string, r date.Range) Trend {
	trend := Trend{Label: label}

	var amounts []decimal.Decimal
	var first, last date.Date
	byMonth := make(map[[2]int]decimal.Decimal)
	for _, tx := range l.WithLabel(label) {
		if !r.Contains(tx.Date) {
			continue
		}
		amount := tx.SplitOrAbs(label)
		amounts = append(amounts, amount)
		if first.IsZero() || tx.Date.Before(first) {
			first = tx.Date
		}
		if last.IsZero() || tx.Date.After(last) {
			last = tx.Date
		}
		key := [2]int{tx.Date.Year(), int(tx.Date.Month())}
		byMonth[key] = byMonth[key].Add(amount)
	}
	if len(amounts) == 0 {
		return trend
	}

	slices.SortFunc(amounts, func(a, b decimal.Decimal) int { return a.Cmp(b) })
	trend.Count = len(amounts)
	trend.Median = amounts[len(amounts)/2]
	trend.Min = amounts[0]
	trend.Max = amounts[len(amounts)-1]
	for _, a := range amounts {
		trend.Total = trend.Total.Add(a)
	}

	// One bucket per month from first to last activity, empty months
	// included so a plotted series has no gaps.
	start := date.New(first.Year(), first.Month(), 1)
	end := date.New(last.Year(), last.Month(), 1)
	for m := range start.Months(end) {
		trend.Months = append(trend.Months, MonthBucket{
			Year:  m.Year(),
			Month: m.Month(),
			Total: byMonth[[2]int{m.Year(), int(m.Month())}],
		})
	}
	return trend
}
