package common

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports malformed or missing input, detected before any
// database work. Fields maps an input field name to a human-readable message
// so the caller can redisplay the form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrorValidation.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, msg))
	}
	sort.Strings(parts)
	return ErrorValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrorValidation) match any *ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrorValidation
}
