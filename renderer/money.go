package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney formats a decimal amount in the given currency, with the
// currency's own symbol, grouping and fraction digits.
func formatMoney(d decimal.Decimal, currency string) string {
	cur := money.New(0, currency).Currency()
	return cur.Formatter().Format(d.Shift(int32(cur.Fraction)).IntPart())
}
