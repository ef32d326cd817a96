package remote

import (
	"errors"
	"fmt"
)

// ErrRejected matches every non-success answer from a remote service.
var ErrRejected = errors.New("remote service rejected the request")

// TransportError reports a request that never produced a usable response:
// connection failures, timeouts, unreadable or undecodable bodies.
type TransportError struct {
	Service string
	Op      string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport failure: %v", e.Service, e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectionError carries the status code and raw body of a rejected request.
type RejectionError struct {
	Service    string
	Op         string
	StatusCode int
	Body       string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Service, e.Op, e.StatusCode, e.Body)
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}
