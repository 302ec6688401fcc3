package domain

import "errors"

// Domain errors represent error conditions in the linemark domain.
// These errors are returned wrapped by the public API and can be checked with errors.Is.
var (
	// ErrFileNotFound is returned when the input path does not resolve to a file.
	ErrFileNotFound = errors.New("linemark: file not found")

	// ErrRead is returned when the input file cannot be opened or read.
	ErrRead = errors.New("linemark: read error")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("linemark: invalid configuration")
)

// ErrInvalidTransition is returned when a run moves between phases out of order.
var ErrInvalidTransition = errors.New("linemark: invalid phase transition")
