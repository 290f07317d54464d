// Package apperr defines the structured error type shared by services and
// handlers. Every service failure is classified into one kind; handlers map the
// kind to an HTTP status and a localized message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error.
type Kind int

const (
	Validation Kind = iota
	NotFound
	Authorization
	Conflict
	Internal
)

// Error carries an error kind, a message-catalogue key with optional
// interpolation params, and an optional wrapped cause.
type Error struct {
	Kind   Kind
	Key    string
	Params map[string]string
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Key, e.Err)
	}
	return e.Key
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus returns the explicit status when set, otherwise the default for
// the error's kind.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Authorization:
		return http.StatusForbidden
	case Conflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New builds an Error of the given kind keyed into the message catalogue.
func New(kind Kind, key string) *Error {
	return &Error{Kind: kind, Key: key}
}

// NewNotFound builds a NotFound error with the resource name interpolated into
// the shared validation.notFound message.
func NewNotFound(field string) *Error {
	return &Error{Kind: NotFound, Key: "validation.notFound", Params: map[string]string{"field": field}}
}

// NewConflict builds a duplicate-value error. Status is settable by callers
// because create and update paths report conflicts with different codes.
func NewConflict(field string, status int) *Error {
	return &Error{Kind: Conflict, Key: "validation.duplicate", Params: map[string]string{"field": field}, Status: status}
}

// NewValidation builds a Validation error with a literal detail message.
func NewValidation(key string, params map[string]string) *Error {
	return &Error{Kind: Validation, Key: key, Params: params}
}

// Wrap builds an Internal error around an unexpected cause.
func Wrap(err error) *Error {
	return &Error{Kind: Internal, Key: "message.internalError", Err: err}
}

// As extracts an *Error from err, wrapping unknown errors as Internal so the
// caller always gets a classified error.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err)
}
