package bankbook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the closed set of label groups. Indexing the catalog and the
// per-transaction label sets by Kind instead of by free string removes a
// whole class of typo bugs.
type Kind int

const (
	Bills Kind = iota
	Expenses
	Incomes
)

// Kinds lists all label kinds in their canonical iteration order.
var Kinds = [...]Kind{Bills, Expenses, Incomes}

func (k Kind) String() string {
	switch k {
	case Bills:
		return "bills"
	case Expenses:
		return "expenses"
	case Incomes:
		return "incomes"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind. It accepts the historical
// "categories" spelling as an alias for expenses.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "bills":
		return Bills, nil
	case "expenses", "categories":
		return Expenses, nil
	case "incomes":
		return Incomes, nil
	default:
		return 0, fmt.Errorf("%w: unknown label kind %q", ErrInvalidInput, s)
	}
}

func (k Kind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
