package repositories

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or is not
	// visible to the acting owner. Callers must not be able to tell
	// the two cases apart.
	ErrNotFound = errors.New("record not found")

	// ErrTimeout is returned when a store operation exceeds its
	// deadline. Retryable at the caller's discretion.
	ErrTimeout = errors.New("store operation timed out")

	// ErrDuplicate is returned when an insert violates a unique
	// constraint, e.g. registering an email that already exists.
	ErrDuplicate = errors.New("record already exists")
)
