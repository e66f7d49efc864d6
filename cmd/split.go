package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type splitCmd struct {
	account string
	id      string
	label   string
	amount  string
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "apportion part of a transaction to a label" }
func (*splitCmd) Usage() string {
	return `bkb split -account <number> -id <id> -label <label> -amount <amount>

  Stores how much of the transaction belongs to the label; budgets and
  trends count the split amount instead of the full amount. The label must
  be on the transaction. An amount of 0 removes the split.
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "The transaction's account number.")
	f.StringVar(&c.id, "id", "", "The transaction's id.")
	f.StringVar(&c.label, "label", "", "The label receiving the amount.")
	f.StringVar(&c.amount, "amount", "", "The apportioned amount, 0 to remove.")
}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" || c.id == "" || c.label == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -account, -id, -label and -amount are all required.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid -amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	if err := book.Ledger.SetSplit(c.account, c.id, c.label, amount); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v%s\n", err, suggestLabel(c.label, book.Catalog.AllLabels()))
		return subcommands.ExitFailure
	}

	// Warn when the splits now exceed the transaction itself; stored anyway.
	tx, err := book.Ledger.Get(c.account, c.id)
	if err == nil {
		sum := decimal.Zero
		for _, amt := range tx.Splits {
			sum = sum.Add(amt)
		}
		if sum.GreaterThan(tx.Amount.Abs()) {
			fmt.Fprintf(os.Stderr, "Warning: splits total %s exceeds the transaction amount %s.\n",
				sum, tx.Amount.Abs())
		}
	}
	return SaveBook(book)
}
