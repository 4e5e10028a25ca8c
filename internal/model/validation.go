package model

import (
	"fmt"
	"strings"
)

// ValidationError reports a required field that is missing or blank.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// requireText checks that each name/value pair has a non-blank value.
func requireText(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return &ValidationError{Field: pairs[i]}
		}
	}
	return nil
}

// requireIfSet is requireText for patch fields: nil means "not being changed".
func requireIfSet(name string, v *string) error {
	if v != nil && strings.TrimSpace(*v) == "" {
		return &ValidationError{Field: name}
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Ptr returns a pointer to v. It keeps patch literals short.
func Ptr[T any](v T) *T {
	return &v
}
