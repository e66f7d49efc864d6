package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/rskl/bankbook"
)

type scanCmd struct{}

func (*scanCmd) Name() string     { return "scan" }
func (*scanCmd) Synopsis() string { return "re-apply the matching rules to every transaction" }
func (*scanCmd) Usage() string {
	return `bkb scan

  Recomputes every transaction's automatic labels from the current rule
  catalog and drops split entries whose label is gone. Imports and catalog
  edits already scan on their own; run this after editing the label file by
  hand.
`
}

func (*scanCmd) SetFlags(f *flag.FlagSet) {}

func (*scanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := OpenBook()
	bankbook.Reconcile(book.Ledger, book.Catalog)
	if status := SaveBook(book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Scanned %d transaction(s).\n", book.Ledger.Len())
	return subcommands.ExitSuccess
}
