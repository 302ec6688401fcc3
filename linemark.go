// Package linemark annotates each line of a text file with a random
// identifier and its uppercase letter count.
//
// Example usage:
//
//	a, err := linemark.New(linemark.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := a.Annotate(context.Background(), "notes.txt"); err != nil {
//	    log.Fatal(err)
//	}
package linemark

import (
	"github.com/bft-labs/linemark/pkg/linemark"
)

// Config holds annotator settings. The zero value selects the current revision.
type Config = linemark.Config

// Annotator annotates files and writes the rendered records.
type Annotator = linemark.Annotator

// Option configures optional behavior of an Annotator.
type Option = linemark.Option

// New creates an Annotator writing to stdout unless WithOutput is given.
func New(cfg Config, opts ...Option) (*Annotator, error) {
	return linemark.New(cfg, opts...)
}

// WithOutput sets the writer records are rendered to.
var WithOutput = linemark.WithOutput

// WithLogger sets a logger for diagnostics.
var WithLogger = linemark.WithLogger
