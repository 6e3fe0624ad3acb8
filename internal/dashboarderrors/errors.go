package dashboarderrors

import (
	"errors"
	"fmt"
)

// Fetch-level errors
var (
	ErrNetwork         = errors.New("network error")
	ErrHTTP            = errors.New("http error")
	ErrDecode          = errors.New("decode error")
	ErrUnknownEndpoint = errors.New("unknown endpoint")
)

// Store-level errors
var (
	ErrShape     = errors.New("shape error")
	ErrNotLoaded = errors.New("slice not yet loaded")
	ErrStaleTick = errors.New("stale tick")
)

// Presentation and scheduling errors
var (
	ErrMountMissing      = errors.New("mount point missing")
	ErrInvalidSelection  = errors.New("invalid selection key")
	ErrInvalidPointCount = errors.New("point count must be positive")
	ErrAlreadyPolling    = errors.New("scheduler already polling")
)

// NetworkError reports a transport failure (DNS, connection, timeout).
type NetworkError struct {
	Path string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.Path, e.Err)
}

func (e *NetworkError) Unwrap() []error { return []error{ErrNetwork, e.Err} }

// HTTPError reports a non-2xx response.
type HTTPError struct {
	Path   string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error fetching %s: status %d", e.Path, e.Status)
}

func (e *HTTPError) Unwrap() error { return ErrHTTP }

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error for %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }

// ShapeError reports well-formed JSON that is missing or has malformed fields.
type ShapeError struct {
	Slice string
	Err   error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape error in %s: %v", e.Slice, e.Err)
}

func (e *ShapeError) Unwrap() []error { return []error{ErrShape, e.Err} }
