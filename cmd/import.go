package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rskl/bankbook"
)

type importCmd struct {
	noDedupeAmountDay bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import bank statement files into the ledger" }
func (*importCmd) Usage() string {
	return `bkb import [-no-dedupe-amount-day] <file.json> [<file.json> ...]

  Merges the transactions of one or more bank JSON exports into the ledger.
  Accounts are registered on first sighting. Records already in the ledger
  are skipped, and the matching rules are re-applied afterwards.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noDedupeAmountDay, "no-dedupe-amount-day", false,
		"Do not skip records matching an existing transaction by day and amount under a different id length.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one statement file is required.")
		return subcommands.ExitUsageError
	}

	opts := bankbook.ImportOptions{
		NoDedupeAmountDay: c.noDedupeAmountDay || !Config().DedupeAmountDay,
	}

	book := OpenBook()
	var total bankbook.ImportStats
	for _, path := range f.Args() {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening statement %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		stmt, err := bankbook.DecodeStatement(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading statement %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		total.Add(book.Import(stmt, opts))
	}

	if status := SaveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Imported %d new transaction(s), skipped %d, %d new account(s).\n",
		total.TransactionsAdded, total.TransactionsIgnored, total.AccountsAdded)
	return subcommands.ExitSuccess
}
