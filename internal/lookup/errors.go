package lookup

import (
	"errors"
	"fmt"
)

// Sentinel errors for nationality lookups.
var (
	ErrTransport         = errors.New("lookup: request failed")
	ErrStatus            = errors.New("lookup: unexpected status")
	ErrMalformedResponse = errors.New("lookup: malformed response")
)

// Error wraps an underlying error with request context.
type Error struct {
	Op     string // Operation, e.g. "author_batch"
	Status int    // HTTP status, if a response was received
	Names  int    // Number of names in the batch
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("lookup %s [%d names, status %d]: %v", e.Op, e.Names, e.Status, e.Err)
	}
	return fmt.Sprintf("lookup %s [%d names]: %v", e.Op, e.Names, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(op string, status, names int, err error) error {
	return &Error{
		Op:     op,
		Status: status,
		Names:  names,
		Err:    err,
	}
}
