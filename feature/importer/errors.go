package importer

import (
	"errors"
	"fmt"
)

// ErrMissingField matches every *MissingFieldError.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError reports an upstream record lacking a required field.
// The importer skips the record and carries on.
type MissingFieldError struct {
	Entity string
	Field  string
	Ref    string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("%s %s: missing required field %q", e.Entity, e.Ref, e.Field)
	}
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

// Is implements errors.Is support.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
