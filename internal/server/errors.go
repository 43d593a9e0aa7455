package server

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/chatstamp/pkg/timefmt"
)

// Machine-readable error codes returned in the "code" field.
const (
	CodeInvalidTimestamp = "invalid_timestamp"
	CodeUnknownTimezone  = "unknown_timezone"
	CodeUnknownPolicy    = "unknown_policy"
	CodeInvalidParameter = "invalid_parameter"
	CodeInvalidBody      = "invalid_body"
	CodeTooManyItems     = "too_many_timestamps"
	CodeNotFound         = "not_found"
	CodeInternal         = "internal_error"
)

// HTTPError is an error that knows how to present itself to a client.
type HTTPError struct {
	// Err is the underlying error. It is logged, never sent.
	Err error
	// Message is the user-facing error message.
	Message string
	// ErrorCode is one of the Code constants.
	ErrorCode string
	// Code is the HTTP status code.
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code.
func (e *HTTPError) StatusCode() int {
	return e.Code
}

// NewHTTPError creates an HTTPError with the given status, code and message.
func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{Code: status, ErrorCode: code, Message: message}
}

func badRequest(code, message string, err error) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, ErrorCode: code, Message: message, Err: err}
}

// formatterError maps formatter sentinels to client errors. Anything else is
// an internal failure.
func formatterError(err error) *HTTPError {
	switch {
	case errors.Is(err, timefmt.ErrUnknownTimezone):
		return badRequest(CodeUnknownTimezone, "unknown timezone", err)
	case errors.Is(err, timefmt.ErrUnknownPolicy):
		return badRequest(CodeUnknownPolicy, "unknown policy", err)
	case errors.Is(err, timefmt.ErrInvalidTimestamp):
		return badRequest(CodeInvalidTimestamp, "invalid timestamp", err)
	default:
		return &HTTPError{Code: http.StatusInternalServerError, ErrorCode: CodeInternal, Message: http.StatusText(http.StatusInternalServerError), Err: err}
	}
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
