package bankbook

// Book is the explicit composition root for the ledger core: the transaction
// store, the label catalog and the budget definitions, constructed once at
// process start and passed by pointer to whoever needs it. There is no
// process-wide shared state behind it.
type Book struct {
	Ledger  *Ledger
	Catalog *Catalog
	Budgets Budgets
}

// NewBook creates a Book over empty components.
func NewBook() *Book {
	return &Book{
		Ledger:  NewLedger(),
		Catalog: NewCatalog(),
		Budgets: make(Budgets),
	}
}

// CreateLabel defines a new label in the catalog.
func (b *Book) CreateLabel(kind Kind, name string) error {
	return b.Catalog.CreateLabel(kind, name)
}

// RenameLabel renames a label in the catalog and cascades the rename through
// every transaction's manual labels and splits, and through the budget
// definitions, then reconciles so auto labels pick up the new name. Label
// sets are not eventually consistent on their own; the cascade is the
// consistency mechanism.
func (b *Book) RenameLabel(kind Kind, old, new string) error {
	if err := b.Catalog.RenameLabel(kind, old, new); err != nil {
		return err
	}
	b.Ledger.RenameLabel(old, new)
	b.Budgets.Rename(old, new)
	Reconcile(b.Ledger, b.Catalog)
	return nil
}

// RemoveLabel removes a label from the catalog and cascades the removal:
// the label disappears from every transaction's manual lists and splits and
// from the budgets, and the following reconciliation pass clears it from the
// auto sets for good.
func (b *Book) RemoveLabel(kind Kind, name string) error {
	if err := b.Catalog.RemoveLabel(kind, name); err != nil {
		return err
	}
	b.Ledger.RemoveLabel(name)
	b.Budgets.Remove(name)
	Reconcile(b.Ledger, b.Catalog)
	return nil
}

// AddRule attaches a rule to a label and reconciles.
func (b *Book) AddRule(kind Kind, label string, rule Rule) error {
	if err := b.Catalog.AddRule(kind, label, rule); err != nil {
		return err
	}
	Reconcile(b.Ledger, b.Catalog)
	return nil
}

// RemoveRule detaches a rule from a label and reconciles.
func (b *Book) RemoveRule(kind Kind, label, ruleName string) error {
	if err := b.Catalog.RemoveRule(kind, label, ruleName); err != nil {
		return err
	}
	Reconcile(b.Ledger, b.Catalog)
	return nil
}

// Import merges a parsed statement and reconciles the new transactions.
func (b *Book) Import(stmt Statement, opts ImportOptions) ImportStats {
	stats := b.Ledger.Import(stmt, opts)
	Reconcile(b.Ledger, b.Catalog)
	return stats
}
