package services

import "errors"

// Base error kinds the HTTP layer maps to status codes
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// DomainError carries a human-readable message while staying matchable
// against the base kinds with errors.Is
type DomainError struct {
	kind    error
	message string
}

func (e *DomainError) Error() string {
	return e.message
}

func (e *DomainError) Unwrap() error {
	return e.kind
}

func notFoundError(message string) error {
	return &DomainError{kind: ErrNotFound, message: message}
}

func conflictError(message string) error {
	return &DomainError{kind: ErrConflict, message: message}
}

func validationError(message string) error {
	return &DomainError{kind: ErrValidation, message: message}
}
