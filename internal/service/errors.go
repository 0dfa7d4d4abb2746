package service

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries every input violation collected by the validator,
// keyed by request field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldError is a business-rule violation reported under a single response
// field. The handler renders it as {<field>: <message>, "error": true}.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Business-rule violations. Matched by identity with errors.Is; the message
// text is part of the API contract.
var (
	ErrEmailNotFound     = &FieldError{Field: "email", Message: "Email not found"}
	ErrIncorrectPassword = &FieldError{Field: "password", Message: "Incorrect password"}

	ErrProductAlreadyExists = &FieldError{Field: "product", Message: "Product already exists"}
	ErrProductNotFound      = &FieldError{Field: "product", Message: "Product not found"}

	ErrRawAlreadyExists = &FieldError{Field: "raw", Message: "Raw already exists"}
	ErrRawNotFound      = &FieldError{Field: "raw", Message: "Raw not found"}

	ErrInvalidCredentials = &FieldError{Field: "userId", Message: "Invalid credentials"}
)
