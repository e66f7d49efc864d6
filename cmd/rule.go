package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rskl/bankbook"
	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

type ruleAddCmd struct {
	label      string
	memo       string
	memoExact  bool
	payee      string
	payeeExact bool
	amountMin  string
	amountMax  string
	startDate  string
	endDate    string
	txType     string
	color      string
	alias      string
}

func (*ruleAddCmd) Name() string     { return "rule-add" }
func (*ruleAddCmd) Synopsis() string { return "attach a matching rule to a label" }
func (*ruleAddCmd) Usage() string {
	return `bkb rule-add -label <label> <rule-name> [predicates...]

  Attaches a named rule to a label and re-applies the rules. A rule needs at
  least one of -memo, -payee, -amount-min or -amount-max. Adding a rule under
  an existing name replaces it.
`
}

func (c *ruleAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.label, "label", "", "The label owning the rule.")
	f.StringVar(&c.memo, "memo", "", "Match this text in the memo (case-insensitive substring).")
	f.BoolVar(&c.memoExact, "memo-exact", false, "Require the memo to equal -memo exactly.")
	f.StringVar(&c.payee, "payee", "", "Match this text in the payee (case-insensitive substring).")
	f.BoolVar(&c.payeeExact, "payee-exact", false, "Require the payee to equal -payee exactly.")
	f.StringVar(&c.amountMin, "amount-min", "", "Match amounts at or above this value.")
	f.StringVar(&c.amountMax, "amount-max", "", "Match amounts at or below this value.")
	f.StringVar(&c.startDate, "start-date", "", "Match transactions on or after this date (YYYY-MM-DD).")
	f.StringVar(&c.endDate, "end-date", "", "Match transactions on or before this date (YYYY-MM-DD).")
	f.StringVar(&c.txType, "type", "", "Match this bank transaction type, e.g. DEBIT.")
	f.StringVar(&c.color, "color", "", "Display color carried by the rule.")
	f.StringVar(&c.alias, "alias", "", "Display name stamped onto matching transactions.")
}

func (c *ruleAddCmd) rule(name string) (bankbook.Rule, error) {
	rule := bankbook.Rule{
		Name:       name,
		Memo:       c.memo,
		MemoExact:  c.memoExact,
		Payee:      c.payee,
		PayeeExact: c.payeeExact,
		Type:       c.txType,
		Color:      c.color,
		Alias:      c.alias,
	}
	var err error
	if c.startDate != "" {
		if rule.StartDate, err = date.Parse(c.startDate); err != nil {
			return bankbook.Rule{}, err
		}
	}
	if c.endDate != "" {
		if rule.EndDate, err = date.Parse(c.endDate); err != nil {
			return bankbook.Rule{}, err
		}
	}
	if c.amountMin != "" {
		lo, err := decimal.NewFromString(c.amountMin)
		if err != nil {
			return bankbook.Rule{}, fmt.Errorf("invalid -amount-min %q: %w", c.amountMin, err)
		}
		rule.AmountMin = &lo
	}
	if c.amountMax != "" {
		hi, err := decimal.NewFromString(c.amountMax)
		if err != nil {
			return bankbook.Rule{}, fmt.Errorf("invalid -amount-max %q: %w", c.amountMax, err)
		}
		rule.AmountMax = &hi
	}
	return rule, nil
}

func (c *ruleAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.label == "" {
		fmt.Fprintln(os.Stderr, "Error: -label and exactly one rule name are required.")
		return subcommands.ExitUsageError
	}
	rule, err := c.rule(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	kind, ok := book.Catalog.Lookup(c.label)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no label %q%s\n", c.label, suggestLabel(c.label, book.Catalog.AllLabels()))
		return subcommands.ExitFailure
	}
	if err := book.AddRule(kind, c.label, rule); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return SaveBook(book)
}

type ruleRemoveCmd struct {
	label string
}

func (*ruleRemoveCmd) Name() string     { return "rule-remove" }
func (*ruleRemoveCmd) Synopsis() string { return "detach a matching rule from a label" }
func (*ruleRemoveCmd) Usage() string {
	return `bkb rule-remove -label <label> <rule-name>

  Detaches a rule and re-applies the remaining rules; automatic labels the
  rule granted disappear on that pass.
`
}

func (c *ruleRemoveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.label, "label", "", "The label owning the rule.")
}

func (c *ruleRemoveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.label == "" {
		fmt.Fprintln(os.Stderr, "Error: -label and exactly one rule name are required.")
		return subcommands.ExitUsageError
	}

	book := OpenBook()
	kind, ok := book.Catalog.Lookup(c.label)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no label %q%s\n", c.label, suggestLabel(c.label, book.Catalog.AllLabels()))
		return subcommands.ExitFailure
	}
	if err := book.RemoveRule(kind, c.label, f.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return SaveBook(book)
}

type ruleListCmd struct{}

func (*ruleListCmd) Name() string     { return "rules" }
func (*ruleListCmd) Synopsis() string { return "list the rules of a label" }
func (*ruleListCmd) Usage() string {
	return `bkb rules <label>

  Lists every rule attached to a label with its predicates.
`
}

func (*ruleListCmd) SetFlags(f *flag.FlagSet) {}

func (*ruleListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one label name is required.")
		return subcommands.ExitUsageError
	}
	label := f.Arg(0)

	book := OpenBook()
	kind, ok := book.Catalog.Lookup(label)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no label %q%s\n", label, suggestLabel(label, book.Catalog.AllLabels()))
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Rules of %s (%s)\n\n", label, kind)
	rules := book.Catalog.Rules(kind, label)
	if len(rules) == 0 {
		b.WriteString("_No rules attached._\n")
	}
	for _, r := range rules {
		fmt.Fprintf(&b, "* **%s**:", r.Name)
		if r.Memo != "" {
			fmt.Fprintf(&b, " memo ~ %q", r.Memo)
			if r.MemoExact {
				b.WriteString(" (exact)")
			}
		}
		if r.Payee != "" {
			fmt.Fprintf(&b, " payee ~ %q", r.Payee)
			if r.PayeeExact {
				b.WriteString(" (exact)")
			}
		}
		if r.AmountMin != nil {
			fmt.Fprintf(&b, " amount >= %s", r.AmountMin)
		}
		if r.AmountMax != nil {
			fmt.Fprintf(&b, " amount <= %s", r.AmountMax)
		}
		if !r.StartDate.IsZero() {
			fmt.Fprintf(&b, " from %s", r.StartDate)
		}
		if !r.EndDate.IsZero() {
			fmt.Fprintf(&b, " to %s", r.EndDate)
		}
		if r.Type != "" {
			fmt.Fprintf(&b, " type %s", r.Type)
		}
		if r.Alias != "" {
			fmt.Fprintf(&b, " alias %q", r.Alias)
		}
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
