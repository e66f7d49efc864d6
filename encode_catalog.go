package bankbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rskl/bankbook/date"
	"github.com/shopspring/decimal"
)

// ruleJSON is the on-disk shape of one rule inside the catalog document:
// {kind: {label: {ruleName: {start_date, ..., match_name, color, alias}}}}.
// Dates and amounts are persisted as strings, empty when unset, matching the
// historical catalog files.
type ruleJSON struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Memo       string `json:"memo"`
	MemoExact  bool   `json:"memo_exact"`
	Payee      string `json:"payee"`
	PayeeExact bool   `json:"payee_exact"`
	AmountMin  string `json:"amount_min"`
	AmountMax  string `json:"amount_max"`
	Type       string `json:"type"`
	MatchName  string `json:"match_name"`
	Color      string `json:"color"`
	Alias      string `json:"alias"`
}

func toRuleJSON(r Rule) ruleJSON {
	j := ruleJSON{
		Memo:       r.Memo,
		MemoExact:  r.MemoExact,
		Payee:      r.Payee,
		PayeeExact: r.PayeeExact,
		Type:       r.Type,
		MatchName:  r.Name,
		Color:      r.Color,
		Alias:      r.Alias,
	}
	if !r.StartDate.IsZero() {
		j.StartDate = r.StartDate.String()
	}
	if !r.EndDate.IsZero() {
		j.EndDate = r.EndDate.String()
	}
	if r.AmountMin != nil {
		j.AmountMin = r.AmountMin.String()
	}
	if r.AmountMax != nil {
		j.AmountMax = r.AmountMax.String()
	}
	return j
}

func (j ruleJSON) rule(name string) (Rule, error) {
	r := Rule{
		Name:       j.MatchName,
		Memo:       j.Memo,
		MemoExact:  j.MemoExact,
		Payee:      j.Payee,
		PayeeExact: j.PayeeExact,
		Type:       j.Type,
		Color:      j.Color,
		Alias:      j.Alias,
	}
	if r.Name == "" {
		r.Name = name
	}
	var err error
	if j.StartDate != "" {
		if r.StartDate, err = date.Parse(j.StartDate); err != nil {
			return Rule{}, fmt.Errorf("rule %q: %w", name, err)
		}
	}
	if j.EndDate != "" {
		if r.EndDate, err = date.Parse(j.EndDate); err != nil {
			return Rule{}, fmt.Errorf("rule %q: %w", name, err)
		}
	}
	if j.AmountMin != "" {
		lo, err := decimal.NewFromString(j.AmountMin)
		if err != nil {
			return Rule{}, fmt.Errorf("rule %q: invalid amount_min %q: %w", name, j.AmountMin, err)
		}
		r.AmountMin = &lo
	}
	if j.AmountMax != "" {
		hi, err := decimal.NewFromString(j.AmountMax)
		if err != nil {
			return Rule{}, fmt.Errorf("rule %q: invalid amount_max %q: %w", name, j.AmountMax, err)
		}
		r.AmountMax = &hi
	}
	return r, nil
}

// EncodeCatalog writes the catalog as an indented JSON document keyed by
// kind, then label, then rule name.
func EncodeCatalog(w io.Writer, c *Catalog) error {
	doc := make(map[string]map[string]map[string]ruleJSON, len(Kinds))
	for _, kind := range Kinds {
		group := make(map[string]map[string]ruleJSON)
		for _, label := range c.Labels(kind) {
			rules := make(map[string]ruleJSON)
			for _, r := range c.Rules(kind, label) {
				rules[r.Name] = toRuleJSON(r)
			}
			group[label] = rules
		}
		doc[kind.String()] = group
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

// DecodeCatalog reads a catalog JSON document. Every rule goes through the
// same validation as rules created through the API: a catalog file holding
// an unconditional rule is rejected rather than silently evaluated.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var doc map[string]map[string]map[string]ruleJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode catalog: %w", err)
	}
	catalog := NewCatalog()
	for kindName, group := range doc {
		kind, err := ParseKind(kindName)
		if err != nil {
			return nil, err
		}
		for label, rules := range group {
			if err := catalog.CreateLabel(kind, label); err != nil {
				return nil, err
			}
			for name, j := range rules {
				rule, err := j.rule(name)
				if err != nil {
					return nil, err
				}
				if err := catalog.AddRule(kind, label, rule); err != nil {
					return nil, err
				}
			}
		}
	}
	return catalog, nil
}

// budgetJSON is the on-disk shape of one budget line: {"monthly_budget": "150.00"}.
type budgetJSON struct {
	MonthlyBudget string `json:"monthly_budget"`
}

// EncodeBudgets writes the budgets as an indented JSON document.
func EncodeBudgets(w io.Writer, b Budgets) error {
	doc := make(map[string]budgetJSON, len(b))
	for label, monthly := range b {
		doc[label] = budgetJSON{MonthlyBudget: monthly.String()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode budgets: %w", err)
	}
	return nil
}

// DecodeBudgets reads a budgets JSON document. Lines with a blank amount are
// skipped, as the historical files allowed clearing a budget by blanking it.
func DecodeBudgets(r io.Reader) (Budgets, error) {
	var doc map[string]budgetJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode budgets: %w", err)
	}
	budgets := make(Budgets, len(doc))
	for label, j := range doc {
		if j.MonthlyBudget == "" {
			continue
		}
		monthly, err := decimal.NewFromString(j.MonthlyBudget)
		if err != nil {
			return nil, fmt.Errorf("invalid monthly_budget %q for label %q: %w", j.MonthlyBudget, label, err)
		}
		budgets.Set(label, monthly)
	}
	return budgets, nil
}
