package branch

import "errors"

var (
	// ErrConflictNotFound is returned when a name matches no conflict with an
	// acceptable status.
	ErrConflictNotFound = errors.New("conflict not found")
	// ErrAmbiguousConflict is returned when a name matches several conflicts.
	ErrAmbiguousConflict = errors.New("ambiguous conflict")
	// ErrAmbiguousOperation is returned when a conflict is already claimed by
	// a different pending operation.
	ErrAmbiguousOperation = errors.New("ambiguous operation")
	// ErrUnresolvedConflicts is returned by CreateAdaptors in strict mode.
	ErrUnresolvedConflicts = errors.New("unresolved conflicts")
)
