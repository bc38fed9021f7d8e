// Package apperrors defines the error taxonomy shared by handlers, services
// and repositories: validation, not-found, authorization, persistence and
// collaborator failures, each mapped to a fixed HTTP status.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindPersistence
	KindCollaborator
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

func Collaborator(message string, err error) *Error {
	return &Error{Kind: KindCollaborator, Message: message, Err: err}
}

// KindOf returns the taxonomy kind of err, or KindUnknown for errors that
// did not originate from this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Message returns the client-facing message for err. Persistence failures
// are masked with a generic message so storage details never leak.
func Message(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return "internal server error"
	}
	if appErr.Kind == KindPersistence {
		return "internal server error"
	}
	return appErr.Message
}

// HTTPStatus maps err to the response status used by the fiber error handler.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuthorization:
		return http.StatusForbidden
	case KindCollaborator:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
