// Package profile provides loading and validation for the experience record and policy tables.
package profile

import "fmt"

// LoadError represents a failure to load or parse a profile data file.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents an experience record or policy table that failed
// structural validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile validation error: %s: %s", e.Field, e.Message)
}
