package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation marks a missing or malformed required field (HTTP 400).
func Validation(msg string) *Error {
	return New(http.StatusBadRequest, "validation_error", errors.New(msg))
}

// NotFound marks a reference to an id that does not resolve (HTTP 404).
func NotFound(msg string) *Error {
	return New(http.StatusNotFound, "not_found", errors.New(msg))
}

// Gateway wraps a failure of the generative-language API (HTTP 502-ish,
// surfaced as 500 to match the envelope contract).
func Gateway(err error) *Error {
	return New(http.StatusInternalServerError, "gateway_error", err)
}

// Store wraps a database failure (HTTP 500).
func Store(err error) *Error {
	return New(http.StatusInternalServerError, "store_error", err)
}

// From normalizes any error into an *Error, defaulting to a store error so
// that unclassified failures still surface as HTTP 500.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Store(err)
}
