// Package apperrors defines the error taxonomy every layer maps into.
// All kinds surface to the client as 4xx responses with a readable
// message; nothing here is retried internally.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindForbidden
	KindConflict
	KindNotFound
	KindInvalidToken
	KindRateLimited
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	// Field names the offending attribute for conflict errors, e.g.
	// "email" or "alias".
	Field string
	Err   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Conflict(field string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("a record with this %s already exists", field),
		Field:   field,
	}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidToken(err error) *Error {
	return &Error{Kind: KindInvalidToken, Message: "invalid or expired token", Err: err}
}

func RateLimited(message string) *Error {
	return &Error{Kind: KindRateLimited, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the taxonomy kind from any error chain; unclassified
// errors report KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
