package exports

import "errors"

// Sentinel errors for registration and lookup.
var (
	// ErrEmptyName is returned when registering without a name.
	ErrEmptyName = errors.New("exports: empty name")

	// ErrNilFunc is returned when registering a nil function.
	ErrNilFunc = errors.New("exports: nil func")

	// ErrDuplicate is returned when a name is already registered.
	ErrDuplicate = errors.New("exports: duplicate name")

	// ErrUnknownExport is returned when calling a name that was never registered.
	ErrUnknownExport = errors.New("exports: unknown export")
)
