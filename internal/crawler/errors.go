package crawler

import (
	"errors"
	"fmt"
)

// NetworkError is a fetch failure of any kind: DNS, connect, TLS, timeout
// or an unreadable response. The Spider contains it at the worker boundary;
// a failed URL contributes zero links and is never retried.
type NetworkError struct {
	// URL is the address that was being fetched.
	URL string

	// Err is the underlying transport error.
	Err error
}

// Error implements error.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ErrInvalidSeed is returned by Crawl when the seed is not an absolute URL.
var ErrInvalidSeed = errors.New("invalid seed URL")
