package stylish

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingComponentID is the cause of a StructuralError for a component collected without an id.
	ErrMissingComponentID = errors.New("missing component id")

	// ErrMissingRunHandler is the cause of a StructuralError for a command without a run handler.
	ErrMissingRunHandler = errors.New("missing run handler")
)

// StructuralError reports a collected type that lacks a declaration it needs. It is fatal to the
// registration pass that raised it; the extension author has to fix the declaration.
type StructuralError struct {
	// Kind is what was being collected: "item component", "block component", "custom command".
	Kind string

	// Name is the Go type name (or declared name) of the offending type.
	Name string

	// Reason describes the missing capability.
	Reason string

	// Err is the sentinel cause.
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s %s %s", e.Kind, e.Name, e.Reason)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}
