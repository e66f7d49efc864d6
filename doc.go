// Package bankbook implements a personal finance ledger: bank statements are
// imported into an append-only transaction store, a user-authored rule
// catalog labels the transactions on every scan, and budget and trend
// read-models are computed from the labeled store.
//
// The store is plain in-memory data persisted as whole-file snapshots
// (ledger.jsonl, labels.json, budgets.json); LoadBook and SaveBook move a
// complete Book between disk and memory. Book is the composition root: its
// methods cascade label renames and removals through manual labels, splits
// and budgets, then re-run Reconcile so the auto labels follow.
//
// All amounts are decimal.Decimal; calendar math lives in the date
// subpackage.
package bankbook
