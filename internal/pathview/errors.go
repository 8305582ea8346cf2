package pathview

import (
	"errors"
	"fmt"
)

// ErrUnsupportedView marks a shape/view pair that has no outline.
var ErrUnsupportedView = errors.New("unsupported shape/view combination")

// MissingInputError reports an absent scene description or path source.
type MissingInputError struct {
	Resource string
	Err      error
}

func (e *MissingInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing input %q: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("missing input %q", e.Resource)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// ConfigError reports a malformed object or path record.
type ConfigError struct {
	Object string // e.g. "objects[2] (Box)" or a path file name
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Object, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", e.Object, e.Field, e.Reason)
}

func missingField(obj, field string) *ConfigError {
	return &ConfigError{Object: obj, Field: field, Reason: "required field is missing"}
}
