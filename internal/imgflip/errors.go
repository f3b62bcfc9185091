package imgflip

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailure covers transport errors and non-2xx responses
	ErrFetchFailure = errors.New("fetch failure")
	// ErrMalformedPayload means the response parsed but lacks the success
	// flag or the memes array
	ErrMalformedPayload = errors.New("malformed payload")
)

// FetchError carries the HTTP status (0 for transport errors) of a failed fetch
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("template listing returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("template listing request failed: %v", e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetchFailure}
	}
	return []error{ErrFetchFailure, e.Err}
}

// PayloadError describes why a response body was rejected
type PayloadError struct {
	Reason string
	Err    error
}

func (e *PayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed template listing: %s: %v", e.Reason, e.Err)
	}
	return "malformed template listing: " + e.Reason
}

func (e *PayloadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedPayload}
	}
	return []error{ErrMalformedPayload, e.Err}
}
