package photoapi

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrMissingAccessKey is returned before any request when no access key is configured
	ErrMissingAccessKey = errors.New("unsplash access key is not configured")

	// ErrMalformedResponse is returned when a response body does not have the expected shape
	ErrMalformedResponse = errors.New("malformed photo response")

	// ErrResponseTooLarge is returned when a response body exceeds the size cap
	ErrResponseTooLarge = errors.New("response body too large")
)

// RequestError wraps a transport failure (DNS, connection, timeout, cancellation)
type RequestError struct {
	Op  string
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError is returned for any non-2xx response
type StatusError struct {
	Op         string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected HTTP status %s", e.Op, e.Status)
}

// unwrapURLError drops the *url.Error wrapper, whose message embeds the request URL and the access key
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
