package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// Narrative generation returns an *InvalidInputError wrapping this sentinel.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown narrative type or rewriter name.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidVocabulary indicates vocabulary or template data failed validation.
	// The engine cannot be constructed from it.
	ErrInvalidVocabulary = errors.New("invalid vocabulary")
)

// InvalidInputError describes which part of a narrative request was rejected.
// It matches ErrInvalidInput with errors.Is.
type InvalidInputError struct {
	// Field names the offending request field (e.g. "entries", "matter").
	Field string

	// Reason is a short human-readable explanation.
	Reason string
}

// NewInvalidInputError creates an InvalidInputError for the given field.
func NewInvalidInputError(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
}

// Unwrap returns ErrInvalidInput so callers can use errors.Is.
func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}
