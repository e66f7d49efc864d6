package bankbook

import "errors"

// Error taxonomy for the ledger core. Callers match with errors.Is.
var (
	// ErrNotFound reports a lookup for a transaction, account or label
	// that does not exist in the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports malformed caller input: an out-of-range
	// month, an empty rule or label name, a rule with no predicate.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateLabel reports a label name collision on create.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrUnknownLabel reports a split against a label the transaction
	// does not carry.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrPersistence reports an unreadable or corrupt data file. An
	// absent file is not a persistence error: loaders fall back to an
	// empty default instead.
	ErrPersistence = errors.New("persistence failure")
)
