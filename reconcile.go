package bankbook

// Reconcile recomputes the auto labels of every transaction in the ledger
// from the current catalog. This is the "scan and update" pass: it clears
// each transaction's auto label set, then walks the catalog in its
// deterministic order (kind, then label name, then rule name) and applies
// every label whose rule matches. All matching labels are applied; there is
// no precedence between rules.
//
// A matching rule that carries an alias overwrites the transaction's display
// alias, so with several aliased matches the last one in catalog order wins.
//
// Manual labels are untouched. After relabeling, stale split entries are
// dropped. The pass is a full O(transactions x rules) batch: rule counts are
// user-authored and small, and passes run on explicit triggers (post-import,
// post-edit), so this stays cheap in practice.
//
// Reconcile is idempotent: a second pass over an unchanged ledger and
// catalog computes the same auto label sets.
func Reconcile(l *Ledger, c *Catalog) {
	for _, tx := range l.all() {
		tx.Auto = LabelSet{}
		for _, kind := range Kinds {
			for _, label := range c.Labels(kind) {
				for _, rule := range c.Rules(kind, label) {
					if !rule.Matches(*tx) {
						continue
					}
					// A manually applied label is not duplicated into
					// the auto set: one occurrence per kind-list.
					if !tx.Manual.Has(kind, label) {
						tx.Auto = tx.Auto.With(kind, label)
					}
					if rule.Alias != "" {
						tx.Alias = rule.Alias
					}
				}
			}
		}
		validateSplits(tx)
	}
}
