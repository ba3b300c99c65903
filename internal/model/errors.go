package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a row does not exist or is owned by
	// another user.
	ErrNotFound = errors.New("not found")
	// ErrLoginTaken is returned on registration with an existing login.
	ErrLoginTaken = errors.New("login is already taken")
	// ErrInvalidCredentials is returned when login or password is wrong.
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrAmbiguousName is returned when a name-scoped delete matches more
	// than one item for the user.
	ErrAmbiguousName = errors.New("name matches more than one item")
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field string
}

func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is missing or invalid", e.Field)
}
