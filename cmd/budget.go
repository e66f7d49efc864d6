package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rskl/bankbook"
	"github.com/rskl/bankbook/renderer"
	"github.com/shopspring/decimal"
)

type budgetSetCmd struct{}

func (*budgetSetCmd) Name() string     { return "budget-set" }
func (*budgetSetCmd) Synopsis() string { return "set the monthly budget of a label" }
func (*budgetSetCmd) Usage() string {
	return `bkb budget-set <label> <monthly-amount>

  Sets the monthly budget attached to a label. An amount of 0 removes the
  budget line.
`
}

func (*budgetSetCmd) SetFlags(f *flag.FlagSet) {}

func (*budgetSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: a label and a monthly amount are required.")
		return subcommands.ExitUsageError
	}
	label := f.Arg(0)
	amount, err := decimal.NewFromString(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	if _, ok := book.Catalog.Lookup(label); !ok {
		fmt.Fprintf(os.Stderr, "Error: no label %q%s\n", label, suggestLabel(label, book.Catalog.AllLabels()))
		return subcommands.ExitFailure
	}
	book.Budgets.Set(label, amount)
	return SaveBook(book)
}

type budgetCmd struct {
	year  int
	month int
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show the monthly budget table" }
func (*budgetCmd) Usage() string {
	return `bkb budget [-year <y> -month <m>]

  Shows, for every budgeted label, the monthly amount, the spend and the
  remainder for the given month (default: the current one), next to the
  previous month's numbers.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "The year to report on (default: current).")
	f.IntVar(&c.month, "month", 0, "The month to report on, 1-12 (default: current).")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	now := time.Now()
	year, month := c.year, time.Month(c.month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	if month < time.January || month > time.December {
		fmt.Fprintf(os.Stderr, "Error: invalid month %d.\n", c.month)
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	lines := bankbook.BudgetTable(book.Ledger, book.Budgets, year, month)
	printMarkdown(renderer.RenderBudget(renderer.NewBudget(Config().Currency, year, month, lines)))
	return subcommands.ExitSuccess
}
