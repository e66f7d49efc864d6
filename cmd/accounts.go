package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rskl/bankbook/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the known accounts" }
func (*accountsCmd) Usage() string {
	return `bkb accounts

  Lists every account seen during imports, with its alias when one is set.
`
}

func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (*accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := OpenBook()
	printMarkdown(renderer.RenderAccounts(renderer.NewAccounts(book.Ledger.Accounts())))
	return subcommands.ExitSuccess
}

type aliasCmd struct{}

func (*aliasCmd) Name() string     { return "alias" }
func (*aliasCmd) Synopsis() string { return "set the display alias of an account" }
func (*aliasCmd) Usage() string {
	return `bkb alias <account-number> <alias...>

  Sets the name reports use for an account instead of its number. An empty
  alias reverts to the number.
`
}

func (*aliasCmd) SetFlags(f *flag.FlagSet) {}

func (*aliasCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: an account number is required.")
		return subcommands.ExitUsageError
	}
	number := f.Arg(0)
	alias := ""
	if f.NArg() > 1 {
		args := f.Args()[1:]
		alias = args[0]
		for _, a := range args[1:] {
			alias += " " + a
		}
	}

	book := OpenBook()
	if err := book.Ledger.SetAccountAlias(number, alias); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return SaveBook(book)
}
