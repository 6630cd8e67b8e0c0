package trx

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("TRX file not found")

// NotFoundError is returned when the TRX path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Path)
}

// Is ...
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ParseError is returned when the TRX file is not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse TRX file (%s): %s", e.Path, e.Err)
}

// Unwrap ...
func (e *ParseError) Unwrap() error {
	return e.Err
}
