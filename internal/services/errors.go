package services

import "net/http"

// Error is the single failure shape the handlers translate into an envelope.
// Code is an HTTP-style status; Message is safe to show to clients.
type Error struct {
	Code    int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func Invalid(msg string) *Error { return &Error{Code: http.StatusBadRequest, Message: msg} }

func NotFound(msg string) *Error { return &Error{Code: http.StatusNotFound, Message: msg} }

// Storage hides cause from the client but keeps it for logging.
func Storage(msg string, cause error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: msg, cause: cause}
}
