package ports

import (
	"context"
	"io"
)

// LineSource yields the lines of a text file in order.
type LineSource interface {
	// Open acquires the underlying file.
	Open(ctx context.Context) error

	// Next returns the next line with its terminator stripped.
	// Returns io.EOF when the input is exhausted.
	Next(ctx context.Context) (string, error)

	// Close releases the underlying file. It is safe to call more than once.
	Close() error
}

// ErrNoMoreLines indicates that the source is exhausted.
var ErrNoMoreLines = io.EOF
