package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rskl/bankbook"
	"github.com/rskl/bankbook/renderer"
)

type txCmd struct {
	account string
	year    int
	month   int
	day     int
	label   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the ledger" }
func (*txCmd) Usage() string {
	return `bkb tx [-account <number>] [-year <y> [-month <m> [-day <d>]]] [-label <name>]

  Lists transactions, date-sorted. Narrow the listing by account, by
  calendar period, or to the transactions carrying one label.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Only this account number.")
	f.IntVar(&c.year, "year", 0, "Only this year.")
	f.IntVar(&c.month, "month", 0, "Only this month (1-12, requires -year).")
	f.IntVar(&c.day, "day", 0, "Only this day of month (requires -month).")
	f.StringVar(&c.label, "label", "", "Only transactions carrying this label.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := OpenBook()

	txs, title, err := c.query(book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.label != "" {
		var kept []bankbook.Transaction
		for _, tx := range txs {
			if tx.HasLabel(c.label) {
				kept = append(kept, tx)
			}
		}
		txs = kept
		title = fmt.Sprintf("%s labeled %s", title, c.label)
		if len(txs) == 0 {
			if _, ok := book.Catalog.Lookup(c.label); !ok {
				fmt.Fprintf(os.Stderr, "Note: no label %q%s\n", c.label, suggestLabel(c.label, book.Catalog.AllLabels()))
			}
		}
	}

	printMarkdown(renderer.RenderTransactions(renderer.NewTransactions(title, Config().Currency, txs)))
	return subcommands.ExitSuccess
}

func (c *txCmd) query(book *bankbook.Book) ([]bankbook.Transaction, string, error) {
	if c.year != 0 && c.account == "" {
		return nil, "", fmt.Errorf("period flags require -account")
	}
	switch {
	case c.day != 0:
		if c.year == 0 || c.month == 0 {
			return nil, "", fmt.Errorf("-day requires -year and -month")
		}
		txs, err := book.Ledger.ByDay(c.account, c.year, c.month, c.day)
		return txs, fmt.Sprintf("Transactions on %d-%02d-%02d", c.year, c.month, c.day), err
	case c.month != 0:
		if c.year == 0 {
			return nil, "", fmt.Errorf("-month requires -year")
		}
		txs, err := book.Ledger.ByMonth(c.account, c.year, c.month)
		return txs, fmt.Sprintf("Transactions in %d-%02d", c.year, c.month), err
	case c.year != 0:
		return book.Ledger.ByYear(c.account, c.year), fmt.Sprintf("Transactions in %d", c.year), nil
	case c.account != "":
		return book.Ledger.ByAccount(c.account), "Transactions of account "+c.account, nil
	default:
		return book.Ledger.All(), "Transactions", nil
	}
}
