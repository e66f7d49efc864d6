package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rskl/bankbook"
	"github.com/rskl/bankbook/date"
	"github.com/rskl/bankbook/renderer"
)

type trendCmd struct {
	from string
	to   string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "show a label's spending trend over time" }
func (*trendCmd) Usage() string {
	return `bkb trend [-from <date>] [-to <date>] <label>

  Shows summary statistics and a month-by-month chart of a label's
  activity. Dates are inclusive; omitted bounds default to the label's
  whole activity span.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the window (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", "", "End of the window (YYYY-MM-DD).")
}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one label is required.")
		return subcommands.ExitUsageError
	}
	label := f.Arg(0)

	var window date.Range
	var err error
	if c.from != "" {
		if window.From, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if window.To, err = date.Parse(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	book := OpenBook()
	if _, ok := book.Catalog.Lookup(label); !ok {
		fmt.Fprintf(os.Stderr, "Error: no label %q%s\n", label, suggestLabel(label, book.Catalog.AllLabels()))
		return subcommands.ExitFailure
	}

	trend := bankbook.TrendReport(book.Ledger, label, window)
	printMarkdown(renderer.RenderTrend(renderer.NewTrend(Config().Currency, trend)))
	return subcommands.ExitSuccess
}
