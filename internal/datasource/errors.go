package datasource

import (
	"errors"
	"fmt"
)

// Errors returned by data sources.
var (
	// ErrOutOfRange indicates a write to an address the source cannot hold.
	ErrOutOfRange = errors.New("address out of range")

	// ErrReadOnly indicates a write to a source opened read-only.
	ErrReadOnly = errors.New("source is read-only")
)

// WriteError describes a rejected write.
type WriteError struct {
	Addr int64
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write at %08x: %v", e.Addr, e.Err)
}

// Unwrap returns the underlying cause.
func (e *WriteError) Unwrap() error {
	return e.Err
}

func writeError(addr int64, err error) error {
	return &WriteError{Addr: addr, Err: err}
}
