package domain

import (
	"fmt"
	"strings"
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationErrors collects field errors for a single request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field string, value any) FieldError {
	return FieldError{Field: field, Message: "has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value any, min, max int) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max), Value: value}
}
