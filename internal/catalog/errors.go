// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package catalog

import "errors"

// Kind classifies a domain error so the API boundary can map it to a
// transport status code without string matching.
type Kind int

const (
	// KindInternal covers store and runtime faults; the underlying message
	// is surfaced verbatim to the caller.
	KindInternal Kind = iota

	// KindValidation marks a malformed payload.
	KindValidation

	// KindNotFound marks a missing book, loan or parent reference.
	KindNotFound

	// KindConflict marks a book that is already on loan.
	KindConflict

	// KindUnavailable marks a disabled capability (no model artifact).
	KindUnavailable
)

// Error is a domain error carrying its kind.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds a not-found domain error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a conflict domain error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Validation builds a validation domain error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Unavailable builds a service-unavailable domain error.
func Unavailable(message string) *Error {
	return &Error{Kind: KindUnavailable, Message: message}
}

// Internal wraps a store or runtime fault.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from an error chain.
// Errors without a catalog kind are treated as internal.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInternal
}
