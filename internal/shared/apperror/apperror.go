package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so handlers and the central error
// handler can decide between re-rendering, redirecting and failing.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindPersistence
	KindGuard
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	case KindGuard:
		return "guard"
	default:
		return "unknown"
	}
}

// Error is the error type shared by all catalog domains.
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

// HTTPStatus maps the kind to a response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindGuard:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Guard(msg string) *Error {
	return &Error{Kind: KindGuard, Message: msg}
}

// Persistence wraps a store failure with the operation that produced it.
func Persistence(op string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: "failed to " + op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Status returns the HTTP status carried by err, or 500 when it carries none.
func Status(err error) int {
	var withStatus interface{ HTTPStatus() int }
	if errors.As(err, &withStatus) {
		return withStatus.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Message returns the user facing message of err. Persistence failures and
// anything else mapped to a 5xx get the generic status text.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Kind == KindPersistence || appErr.Kind == KindUnknown {
			return http.StatusText(http.StatusInternalServerError)
		}
		return appErr.Message
	}
	if status := Status(err); status < http.StatusInternalServerError {
		return err.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}
