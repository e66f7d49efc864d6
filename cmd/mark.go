package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type markCmd struct {
	account string
	id      string
}

func (*markCmd) Name() string     { return "mark" }
func (*markCmd) Synopsis() string { return "apply a label to one transaction by hand" }
func (*markCmd) Usage() string {
	return `bkb mark -account <number> -id <id> <label>

  Applies a label to one transaction. The label must exist in the catalog;
  marking survives rescans, it is how exceptions to the rules are recorded.
`
}

func (c *markCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "The transaction's account number.")
	f.StringVar(&c.id, "id", "", "The transaction's id.")
}

func (c *markCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.account == "" || c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -account, -id and exactly one label are required.")
		return subcommands.ExitUsageError
	}
	label := f.Arg(0)

	book := OpenBook()
	kind, ok := book.Catalog.Lookup(label)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no label %q%s\n", label, suggestLabel(label, book.Catalog.AllLabels()))
		return subcommands.ExitFailure
	}
	if err := book.Ledger.AddManualLabel(c.account, c.id, kind, label); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return SaveBook(book)
}

type unmarkCmd struct {
	account string
	id      string
}

func (*unmarkCmd) Name() string     { return "unmark" }
func (*unmarkCmd) Synopsis() string { return "remove a hand-applied label from one transaction" }
func (*unmarkCmd) Usage() string {
	return `bkb unmark -account <number> -id <id> <label>

  Removes a hand-applied label. Labels granted by rules are untouched;
  detach the rule instead.
`
}

func (c *unmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "The transaction's account number.")
	f.StringVar(&c.id, "id", "", "The transaction's id.")
}

func (c *unmarkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.account == "" || c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -account, -id and exactly one label are required.")
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	if err := book.Ledger.RemoveManualLabel(c.account, c.id, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := book.Ledger.ValidateSplits(c.account, c.id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return SaveBook(book)
}
