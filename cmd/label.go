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

// parseKindFlag converts the -kind flag value, printing the accepted values
// on failure.
func parseKindFlag(s string) (bankbook.Kind, bool) {
	kind, err := bankbook.ParseKind(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (accepted: bills, expenses, incomes)\n", err)
		return 0, false
	}
	return kind, true
}

type labelCreateCmd struct {
	kind string
}

func (*labelCreateCmd) Name() string     { return "label-create" }
func (*labelCreateCmd) Synopsis() string { return "define a new label" }
func (*labelCreateCmd) Usage() string {
	return `bkb label-create -kind <bills|expenses|incomes> <name>

  Defines a new label. Label names are unique across all kinds.
`
}

func (c *labelCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "expenses", "The kind of the label.")
}

func (c *labelCreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one label name is required.")
		return subcommands.ExitUsageError
	}
	kind, ok := parseKindFlag(c.kind)
	if !ok {
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	if err := book.CreateLabel(kind, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return SaveBook(book)
}

type labelRenameCmd struct{}

func (*labelRenameCmd) Name() string     { return "label-rename" }
func (*labelRenameCmd) Synopsis() string { return "rename a label everywhere" }
func (*labelRenameCmd) Usage() string {
	return `bkb label-rename <old> <new>

  Renames a label. Manual labels, splits and budgets follow the new name,
  and the rules are re-applied.
`
}

func (*labelRenameCmd) SetFlags(f *flag.FlagSet) {}

func (*labelRenameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: old and new label names are required.")
		return subcommands.ExitUsageError
	}
	old, new := f.Arg(0), f.Arg(1)

	book := OpenBook()
	kind, ok := book.Catalog.Lookup(old)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no label %q%s\n", old, suggestLabel(old, book.Catalog.AllLabels()))
		return subcommands.ExitFailure
	}
	if err := book.RenameLabel(kind, old, new); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return SaveBook(book)
}

type labelRemoveCmd struct{}

func (*labelRemoveCmd) Name() string     { return "label-remove" }
func (*labelRemoveCmd) Synopsis() string { return "remove a label everywhere" }
func (*labelRemoveCmd) Usage() string {
	return `bkb label-remove <name>

  Removes a label, its rules, and every use of it in manual labels, splits
  and budgets.
`
}

func (*labelRemoveCmd) SetFlags(f *flag.FlagSet) {}

func (*labelRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one label name is required.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	book := OpenBook()
	kind, ok := book.Catalog.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no label %q%s\n", name, suggestLabel(name, book.Catalog.AllLabels()))
		return subcommands.ExitFailure
	}
	if err := book.RemoveLabel(kind, name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return SaveBook(book)
}

type labelListCmd struct{}

func (*labelListCmd) Name() string     { return "labels" }
func (*labelListCmd) Synopsis() string { return "list the defined labels" }
func (*labelListCmd) Usage() string {
	return `bkb labels

  Lists every defined label by kind, with its rule count.
`
}

func (*labelListCmd) SetFlags(f *flag.FlagSet) {}

func (*labelListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := OpenBook()
	printMarkdown(renderer.RenderLabels(renderer.NewLabels(book.Catalog)))
	return subcommands.ExitSuccess
}
