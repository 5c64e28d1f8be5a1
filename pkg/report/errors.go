package report

import "errors"

var (
	// ErrNotFound is wrapped by registry lookups for unknown renderer names.
	ErrNotFound = errors.New("report: renderer not found")
	// ErrDuplicate is wrapped when a name is registered twice.
	ErrDuplicate = errors.New("report: renderer already registered")
)
