package bankbook

import (
	"fmt"
	"slices"
	"strings"
)

// Catalog holds the user-defined label definitions, grouped by kind. Each
// label owns a set of named rules used by the reconciler to derive auto
// labels.
//
// Label names are unique across all kinds, not just within one: splits index
// transactions by bare label name, so two kinds sharing a name would collide
// there silently.
type Catalog struct {
	labels map[Kind]map[string]map[string]Rule
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	labels := make(map[Kind]map[string]map[string]Rule, len(Kinds))
	for _, k := range Kinds {
		labels[k] = make(map[string]map[string]Rule)
	}
	return &Catalog{labels: labels}
}

// Labels returns the label names of one kind, sorted case-insensitively.
func (c *Catalog) Labels(kind Kind) []string {
	names := make([]string, 0, len(c.labels[kind]))
	for name := range c.labels[kind] {
		names = append(names, name)
	}
	slices.SortFunc(names, sortKeyFold)
	return names
}

// AllLabels returns every label name across all kinds, sorted case-insensitively.
func (c *Catalog) AllLabels() []string {
	var names []string
	for _, k := range Kinds {
		names = append(names, c.Labels(k)...)
	}
	slices.SortFunc(names, sortKeyFold)
	return names
}

// Lookup finds the kind a label is defined under.
func (c *Catalog) Lookup(name string) (Kind, bool) {
	for _, k := range Kinds {
		if _, ok := c.labels[k][name]; ok {
			return k, true
		}
	}
	return 0, false
}

// CreateLabel defines a new, empty label under the given kind.
func (c *Catalog) CreateLabel(kind Kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: label name must not be empty", ErrInvalidInput)
	}
	if existing, ok := c.Lookup(name); ok {
		return fmt.Errorf("%w: %q already defined under %s", ErrDuplicateLabel, name, existing)
	}
	c.labels[kind][name] = make(map[string]Rule)
	return nil
}

// RenameLabel renames a label within its kind, keeping its rules. The caller
// is responsible for cascading the rename into the transaction store; see
// Book.RenameLabel.
func (c *Catalog) RenameLabel(kind Kind, old, new string) error {
	rules, ok := c.labels[kind][old]
	if !ok {
		return fmt.Errorf("%w: no label %q under %s", ErrNotFound, old, kind)
	}
	if strings.TrimSpace(new) == "" {
		return fmt.Errorf("%w: label name must not be empty", ErrInvalidInput)
	}
	if existing, ok := c.Lookup(new); ok {
		return fmt.Errorf("%w: %q already defined under %s", ErrDuplicateLabel, new, existing)
	}
	delete(c.labels[kind], old)
	c.labels[kind][new] = rules
	return nil
}

// RemoveLabel removes a label and all of its rules. The caller is
// responsible for cascading the removal into the transaction store; see
// Book.RemoveLabel.
func (c *Catalog) RemoveLabel(kind Kind, name string) error {
	if _, ok := c.labels[kind][name]; !ok {
		return fmt.Errorf("%w: no label %q under %s", ErrNotFound, name, kind)
	}
	delete(c.labels[kind], name)
	return nil
}

// AddRule attaches a rule to an existing label, replacing any rule with the
// same name. Invalid rules are rejected, never stored.
func (c *Catalog) AddRule(kind Kind, label string, rule Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	rules, ok := c.labels[kind][label]
	if !ok {
		return fmt.Errorf("%w: no label %q under %s", ErrNotFound, label, kind)
	}
	rules[rule.Name] = rule
	return nil
}

// RemoveRule removes a rule from a label by name.
func (c *Catalog) RemoveRule(kind Kind, label, ruleName string) error {
	rules, ok := c.labels[kind][label]
	if !ok {
		return fmt.Errorf("%w: no label %q under %s", ErrNotFound, label, kind)
	}
	if _, ok := rules[ruleName]; !ok {
		return fmt.Errorf("%w: no rule %q under label %q", ErrNotFound, ruleName, label)
	}
	delete(rules, ruleName)
	return nil
}

// Rules returns the rules of a label sorted by rule name, so that catalog
// iteration (kind, then label, then rule) is deterministic and reconciliation
// reproducible.
func (c *Catalog) Rules(kind Kind, label string) []Rule {
	byName := c.labels[kind][label]
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)
	rules := make([]Rule, 0, len(names))
	for _, name := range names {
		rules = append(rules, byName[name])
	}
	return rules
}
