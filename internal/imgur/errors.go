package imgur

import "fmt"

// APIError is returned when Imgur rejects a request with a non-2xx
// status. Message carries the service's own error description when the
// response body contained one, the HTTP status text otherwise.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("imgur: HTTP %d: %s", e.StatusCode, e.Message)
}

// TransportError is returned when the service could not be reached at
// all: connection failures, timeouts, interrupted reads.
type TransportError struct {
	// Op names the operation that failed, e.g. "upload image".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("imgur: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
