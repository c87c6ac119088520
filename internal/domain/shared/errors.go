// Package shared contains common domain types and errors used across all
// domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors for use with errors.Is().
var (
	// ErrInvalidInput indicates a malformed argument.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the record store could not be
	// reached or a query failed. The failure is scoped to a single
	// interaction; a fresh interaction may try again.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// DomainError carries the operation context of a failed domain call.
type DomainError struct {
	Domain  string // e.g. "member", "attendance"
	Op      string // operation that failed, e.g. "Upsert"
	Kind    error  // base error for errors.Is() checks
	Message string
	Err     error // underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap exposes the underlying error to errors.Is/As.
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is matches against the Kind as well as the wrapped error.
func (e *DomainError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// NewDomainError creates a DomainError.
func NewDomainError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{Domain: domain, Op: op, Kind: kind, Message: message, Err: err}
}
