package service

import "strings"

// ValidationError carries every rule violation of a request
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

func invalid(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}
