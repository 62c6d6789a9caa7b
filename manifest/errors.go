package manifest

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for a source whose extension is not .yaml, .yml or .hcl.
	ErrUnknownFormat = errors.New("unknown manifest format")

	// ErrDuplicateCommand is returned when a document declares the same command twice.
	ErrDuplicateCommand = errors.New("duplicate command")
)

// Error reports a manifest that could not be read, decoded or validated.
type Error struct {
	// Source is the file name or the name passed to Parse.
	Source string

	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
