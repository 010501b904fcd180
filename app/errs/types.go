package errs

import (
	"net/http"
)

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

func NewUnauthorizedError(message string) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message)
}

func NewForbiddenError(message string) *HTTPError {
	return newHTTPError(http.StatusForbidden, message)
}

// NewBadRequestError builds a 400. A nil code falls back to BAD_REQUEST.
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	e := newHTTPError(http.StatusBadRequest, message)
	if code != nil {
		e.Code = *code
	}
	e.Errors = errors
	return e
}

func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewInternalServerError builds a 500. An empty message uses the status text.
func NewInternalServerError(message string) *HTTPError {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	return newHTTPError(http.StatusInternalServerError, message)
}

func NewMethodNotAllowedError() *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
