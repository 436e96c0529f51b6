package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Code classifies an error for transport-level handling. Every service error
// carries exactly one code; the API layer maps it to a status and decides how
// much of the message is safe to show.
type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
	CodeStateConflict Code = "STATE_CONFLICT"
	CodeInternal      Code = "INTERNAL_ERROR"
	CodeDependency    Code = "DEPENDENCY_ERROR"
)

// Metadata describes how a code surfaces over HTTP.
type Metadata struct {
	HTTPStatus     int
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

// MetadataFor resolves transport metadata for a code. Unknown codes are
// treated as internal so nothing leaks by accident.
func MetadataFor(code Code) Metadata {
	switch code {
	case CodeValidation:
		return Metadata{
			HTTPStatus:     http.StatusBadRequest,
			PublicMessage:  "validation failed",
			DetailsAllowed: true,
		}
	case CodeNotFound:
		return Metadata{
			HTTPStatus:    http.StatusNotFound,
			PublicMessage: "resource not found",
		}
	case CodeConflict:
		return Metadata{
			HTTPStatus:    http.StatusConflict,
			PublicMessage: "conflict detected",
		}
	case CodeStateConflict:
		return Metadata{
			HTTPStatus:     http.StatusUnprocessableEntity,
			PublicMessage:  "state transition disallowed",
			DetailsAllowed: true,
		}
	case CodeDependency:
		return Metadata{
			HTTPStatus:     http.StatusServiceUnavailable,
			Retryable:      true,
			PublicMessage:  "dependency unavailable",
			DetailsAllowed: true,
		}
	default:
		return Metadata{
			HTTPStatus:    http.StatusInternalServerError,
			Retryable:     true,
			PublicMessage: "internal server error",
		}
	}
}

// Error is the coded error type used across services. The cause chain stays
// intact for logging; only code, message and details ever reach a client.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Wrap attaches a code and message to an underlying cause. A nil cause
// degrades to New.
func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

// WithDetails attaches structured context for codes whose metadata allows it.
func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As walks the chain looking for a coded error, returning nil when none is
// found.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
