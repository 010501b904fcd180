// Package errs defines the error shape returned to API clients.
package errs

import (
	"encoding/json"
	"net/http"
	"strings"
)

// FieldError is a validation failure for one request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is an error that knows how it is rendered to the client.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// Write renders e as the JSON response body.
func (e *HTTPError) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(e)
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
