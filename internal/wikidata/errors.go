package wikidata

import (
	"errors"
	"fmt"
)

// Sentinel errors for SPARQL requests.
var (
	ErrRateLimited = errors.New("wikidata: rate limited by server")
	ErrBadRequest  = errors.New("wikidata: bad request")
	ErrServer      = errors.New("wikidata: server error")
	ErrStatus      = errors.New("wikidata: unexpected status")
	ErrParse       = errors.New("wikidata: malformed response")
	ErrEmptyName   = errors.New("wikidata: empty name")
)

// Error wraps an underlying error with the author being looked up.
type Error struct {
	Op   string // "citizenship"
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("wikidata %s [%s]: %v", e.Op, e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(op, name string, err error) error {
	return &Error{Op: op, Name: name, Err: err}
}
