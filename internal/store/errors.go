package store

import "errors"

var (
	// ErrNotFound reports an update referencing an unknown item id.
	ErrNotFound = errors.New("item not found")

	// ErrRateLimited reports an export/import attempted inside the
	// cooldown window. Transient, retryable.
	ErrRateLimited = errors.New("rate limited")

	// ErrImportEmpty reports a CSV import that produced zero valid
	// rows. The collection stays unchanged.
	ErrImportEmpty = errors.New("import produced no items")

	// ErrFileTooLarge reports an import payload over the size cap,
	// rejected before any parsing.
	ErrFileTooLarge = errors.New("import file too large")

	// ErrCorruptData reports a persisted collection that could not
	// be parsed. Recovered by falling back to an empty collection.
	ErrCorruptData = errors.New("corrupt persisted data")
)
