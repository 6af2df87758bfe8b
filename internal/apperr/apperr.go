package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	Validation Kind = iota + 1
	Conflict
	Unauthorized
	Forbidden
	NotFound
	Internal
)

// Error is a tagged error carrying a machine-readable code and optional
// structured details. Services return these; the HTTP layer maps Kind to
// a status and serializes Code/Details into the error envelope.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]any

	cause error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// New builds a tagged error.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Newf builds a tagged error with a formatted message.
func Newf(kind Kind, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithDetails attaches structured details and returns the error.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// Wrap converts an arbitrary error into a tagged one. Already-tagged
// errors pass through unchanged; everything else becomes Internal.
func Wrap(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: Internal, Code: "INTERNAL_ERROR", Message: "Internal server error", cause: err}
}

// KindOf reports the Kind of err, or Internal for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// CodeOf reports the machine-readable code of err, if any.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
