package domain

import "fmt"

// ValidationError reports malformed input. It is always rejected before any
// write happens, so a validation failure is never partially applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
