package models

import (
	"errors"
)

// Sentinel errors for every failure kind of the core. Callers check them
// with errors.Is; the wrapping message carries the key or value that caused
// the failure.
var (
	// ErrValidation is returned when a field fails to coerce to its
	// semantic type during entity construction.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a lookup by key matches nothing.
	ErrNotFound = errors.New("there is no")

	// ErrParse is returned for a malformed row in an externally supplied
	// bank export. Ingestion of the file aborts without a partial commit.
	ErrParse = errors.New("could not parse")

	// ErrStoreCorrupt is returned when a persisted store exists but cannot
	// be read. This is fatal; missing stores are bootstrapped instead.
	ErrStoreCorrupt = errors.New("data store is corrupt")
)
