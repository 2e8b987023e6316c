// Package errors holds the sentinel errors shared by every shop module. Use cases wrap
// them with context and the HTTP layer maps them onto status codes, so callers never
// see driver or crypto details.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested principal or resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness clash, such as a taken username or email.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates malformed or undecryptable request data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates a failed sign-in.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the principal is not allowed to perform the operation.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates a dependency, such as the credential cipher, is not ready.
	ErrUnavailable = errors.New("unavailable")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping it matchable with Is.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
