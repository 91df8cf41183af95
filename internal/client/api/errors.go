package api

import (
	"errors"
	"net/http"
)

// StatusError is a response with a non-success HTTP status. The status code is
// kept for diagnostics even when callers collapse it into a generic failure.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// TransportError is a network-level failure; the request never produced a
// usable response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classify maps a failed call to a typed error. A zero status means the
// failure happened below HTTP.
func classify(status int, message string, err error) error {
	if status == 0 {
		return &TransportError{Err: err}
	}
	return &StatusError{Status: status, Message: message}
}

// IsNotFound reports whether the error is a 404 response.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound
}

// IsValidation reports whether the error is a 400 response.
func IsValidation(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusBadRequest
}

// IsTransport reports whether the request failed below HTTP.
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}

// StatusOf returns the HTTP status carried by the error, or 0 for transport
// failures.
func StatusOf(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}
	return 0
}
