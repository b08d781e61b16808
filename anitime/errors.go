package anitime

import (
	"fmt"
	"net/http"
)

// RequestError reports a transport-level failure: the request could not be
// sent, no response arrived, or the service answered with a non-2xx status.
type RequestError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("anitime %s %s: status %d %s", e.Op, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("anitime %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that does not match the expected shape,
// or a mandatory timestamp that could not be parsed.
type DecodeError struct {
	Op    string
	Input string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("anitime %s: decode %q: %v", e.Op, e.Input, e.Err)
	}
	return fmt.Sprintf("anitime %s: decode: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
