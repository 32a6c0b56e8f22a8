package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable is returned when no response was received at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnexpectedStatus is returned for any response other than 200.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrDecodeResponse is returned when a 200 response has an unreadable body.
	ErrDecodeResponse = errors.New("malformed response body")
)

// StatusError carries the status code of a non-200 response. It matches
// ErrUnexpectedStatus with errors.Is.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatus, e.Code)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
