// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rskl/bankbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "ledger")
	c.Register(&scanCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")
	c.Register(&accountsCmd{}, "ledger")
	c.Register(&aliasCmd{}, "ledger")

	c.Register(&labelCreateCmd{}, "labels")
	c.Register(&labelRenameCmd{}, "labels")
	c.Register(&labelRemoveCmd{}, "labels")
	c.Register(&labelListCmd{}, "labels")
	c.Register(&ruleAddCmd{}, "labels")
	c.Register(&ruleRemoveCmd{}, "labels")
	c.Register(&ruleListCmd{}, "labels")
	c.Register(&markCmd{}, "labels")
	c.Register(&unmarkCmd{}, "labels")

	c.Register(&splitCmd{}, "reports")
	c.Register(&budgetSetCmd{}, "reports")
	c.Register(&budgetCmd{}, "reports")
	c.Register(&trendCmd{}, "reports")

	c.Register(&topicCmd{}, "help")
}

// CommandNames lists every registered subcommand, for shell completion.
func CommandNames() []string {
	return []string{
		"import", "scan", "tx", "accounts", "alias",
		"label-create", "label-rename", "label-remove", "labels",
		"rule-add", "rule-remove", "rules", "mark", "unmark",
		"split", "budget-set", "budget", "trend", "topic",
	}
}

// OpenBook loads the ledger, catalog and budgets from the configured data
// directory. Corrupt files degrade to empty defaults with a warning, so a
// bad file never locks the user out of the CLI.
func OpenBook() *bankbook.Book {
	book, err := bankbook.LoadBook(Config().DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return book
}

// SaveBook writes the ledger, catalog and budgets back to the configured
// data directory.
func SaveBook(book *bankbook.Book) subcommands.ExitStatus {
	if err := bankbook.SaveBook(Config().DataDir, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
