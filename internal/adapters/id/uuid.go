// Package id provides identifier generators for annotated records.
package id

import "github.com/google/uuid"

// RandomGenerator produces a fresh version 4 UUID per call.
type RandomGenerator struct{}

// NewID returns a new random UUID.
func (RandomGenerator) NewID() uuid.UUID {
	return uuid.New()
}

// NilGenerator always returns the zero UUID, reproducing the legacy annotator.
type NilGenerator struct{}

// NewID returns uuid.Nil.
func (NilGenerator) NewID() uuid.UUID {
	return uuid.Nil
}
