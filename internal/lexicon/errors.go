package lexicon

import (
	"fmt"
	"strings"
)

// Error represents a failure to load or compile a lexicon
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lexicon error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("lexicon error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FieldError describes one table that failed validation
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every table that failed validation
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("lexicon validation failed:\n")
	for i, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, fe.Field, fe.Message))
	}
	return sb.String()
}
