package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// Error represents a typed API error. It serialises to the public error object
// {id, code, error_type, detail, source}.
type Error struct {
	ID     string `json:"id"`
	Code   int    `json:"code"`
	Type   string `json:"error_type"`
	Detail string `json:"detail"`
	Source string `json:"source"`
	Err    error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors of the same type slug and status so that cloned
// sentinels still satisfy errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code && e.Type == t.Type
}

// New creates a new Error instance.
func New(errType string, code int, detail string) *Error {
	return &Error{Type: errType, Code: code, Detail: detail}
}

// Wrap attaches context to an existing error.
func Wrap(err error, errType string, code int, detail string) *Error {
	return &Error{Type: errType, Code: code, Detail: detail, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrBadRequest   = New("bad_request", http.StatusBadRequest, "bad request")
	ErrUnauthorized = New("unauthorized", http.StatusUnauthorized, "unauthorized")
	ErrForbidden    = New("forbidden", http.StatusForbidden, "forbidden")
	ErrNotFound     = New("entity_not_found", http.StatusNotFound, "entity not found")
	ErrConflict     = New("conflict", http.StatusConflict, "conflict")
	ErrInternal     = New("internal_server_error", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Type, ErrInternal.Code, ErrInternal.Detail)
}

// Clone returns a copy of the error allowing for detail overrides.
func Clone(err *Error, detail string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if detail != "" {
		clone.Detail = detail
	}
	return &clone
}

// Internal wraps a storage or invariant failure as a 500.
func Internal(err error, detail string) *Error {
	return Wrap(err, ErrInternal.Type, ErrInternal.Code, detail)
}

// BadRequest wraps a decoding or validation failure as a 400.
func BadRequest(err error, detail string) *Error {
	return Wrap(err, ErrBadRequest.Type, ErrBadRequest.Code, detail)
}

// Publish returns a copy stamped with a correlation id and the originating path,
// ready to be written to a client.
func Publish(err error, source string) *Error {
	appErr := FromError(err)
	if appErr == nil {
		return nil
	}
	out := *appErr
	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if out.Source == "" {
		out.Source = source
	}
	return &out
}
