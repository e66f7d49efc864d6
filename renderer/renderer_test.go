package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/rskl/bankbook"
	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestRenderTransactions(t *testing.T) {
	txs := []bankbook.Transaction{{
		AccountNumber: "1111",
		ID:            "A1",
		Date:          date.New(2023, time.January, 9),
		Memo:          "COFFEE SHOP",
		Payee:         "CoffeeCo",
		Type:          "DEBIT",
		Amount:        dec(t, "-87.21"),
	}}
	got := RenderTransactions(NewTransactions("January 2023", "USD", txs))

	for _, want := range []string{"# January 2023", "2023-01-09", "CoffeeCo", "-$87.21"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered transactions missing %q:\n%s", want, got)
		}
	}
}

func TestRenderTransactions_Empty(t *testing.T) {
	got := RenderTransactions(NewTransactions("January 2023", "USD", nil))
	if !strings.Contains(got, "_No transactions._") {
		t.Errorf("empty listing missing placeholder:\n%s", got)
	}
}

func TestRenderTransactions_AliasWins(t *testing.T) {
	txs := []bankbook.Transaction{{
		ID: "A1", Date: date.New(2023, time.January, 9),
		Payee: "CoffeeCo", Alias: "Morning Coffee", Amount: dec(t, "-1"),
	}}
	got := RenderTransactions(NewTransactions("t", "USD", txs))
	if !strings.Contains(got, "Morning Coffee") || strings.Contains(got, "CoffeeCo") {
		t.Errorf("alias did not replace payee:\n%s", got)
	}
}

func TestRenderAccounts(t *testing.T) {
	got := RenderAccounts(NewAccounts([]bankbook.Account{
		{Number: "1111", Type: "CHECKING", Institution: "First Bank", Alias: "joint"},
	}))
	for _, want := range []string{"| 1111 |", "| joint |", "First Bank"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered accounts missing %q:\n%s", want, got)
		}
	}
}

func TestRenderLabels(t *testing.T) {
	catalog := bankbook.NewCatalog()
	catalog.CreateLabel(bankbook.Expenses, "Dining")
	catalog.AddRule(bankbook.Expenses, "Dining", bankbook.Rule{Name: "coffee", Memo: "coffee"})

	got := RenderLabels(NewLabels(catalog))
	for _, want := range []string{"## bills", "## expenses", "## incomes", "| Dining | 1 |"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered labels missing %q:\n%s", want, got)
		}
	}
}

func TestRenderBudget(t *testing.T) {
	lines := []bankbook.BudgetLine{{
		Label:         "Dining",
		Monthly:       dec(t, "150.00"),
		Spent:         dec(t, "87.21"),
		Remaining:     dec(t, "62.79"),
		PrevSpent:     dec(t, "40.00"),
		PrevRemaining: dec(t, "110.00"),
	}}
	got := RenderBudget(NewBudget("USD", 2023, time.January, lines))

	for _, want := range []string{"# Budget for January 2023", "December 2022", "$62.79", "$110.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered budget missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "⚠") {
		t.Errorf("budget within limits flagged as overspent:\n%s", got)
	}
}

func TestRenderBudget_Overspent(t *testing.T) {
	lines := []bankbook.BudgetLine{{
		Label: "Dining", Monthly: dec(t, "50"), Spent: dec(t, "80"), Remaining: dec(t, "-30"),
	}}
	got := RenderBudget(NewBudget("USD", 2023, time.January, lines))
	if !strings.Contains(got, "Dining ⚠") {
		t.Errorf("overspent line not flagged:\n%s", got)
	}
}

func TestRenderTrend(t *testing.T) {
	trend := bankbook.Trend{
		Label:  "Dining",
		Count:  3,
		Total:  dec(t, "60.00"),
		Median: dec(t, "20.00"),
		Min:    dec(t, "10.00"),
		Max:    dec(t, "30.00"),
		Months: []bankbook.MonthBucket{
			{Year: 2023, Month: time.January, Total: dec(t, "40.00")},
			{Year: 2023, Month: time.February, Total: dec(t, "0")},
			{Year: 2023, Month: time.March, Total: dec(t, "20.00")},
		},
	}
	got := RenderTrend(NewTrend("USD", trend))

	for _, want := range []string{"# Trend for Dining", "2023-01", "2023-02", "2023-03", "$60.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered trend missing %q:\n%s", want, got)
		}
	}
	// The peak month gets the full-width bar, the empty month none.
	if !strings.Contains(got, strings.Repeat("#", trendBarWidth)) {
		t.Errorf("peak month bar not at full width:\n%s", got)
	}
}

func TestRenderTrend_Empty(t *testing.T) {
	got := RenderTrend(NewTrend("USD", bankbook.Trend{Label: "Nothing"}))
	if !strings.Contains(got, "_No activity for this label._") {
		t.Errorf("empty trend missing placeholder:\n%s", got)
	}
}
