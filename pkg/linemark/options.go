package linemark

import (
	"io"
	"os"

	"github.com/bft-labs/linemark/internal/app"
	"github.com/bft-labs/linemark/pkg/log"
)

// Phase is the stage an annotation run has reached.
type Phase = app.Phase

// Phases of an annotation run.
const (
	PhaseIdle     = app.PhaseIdle
	PhaseOpened   = app.PhaseOpened
	PhaseReading  = app.PhaseReading
	PhaseClosed   = app.PhaseClosed
	PhasePrinting = app.PhasePrinting
	PhaseDone     = app.PhaseDone
	PhaseFailed   = app.PhaseFailed
)

// PhaseHandler receives phase changes of every run.
// It is called synchronously from the annotating goroutine.
type PhaseHandler interface {
	OnPhaseChange(previous, current Phase, path string)
}

// Option configures optional behavior of an Annotator.
type Option func(*options)

type options struct {
	output       io.Writer
	logger       log.Logger
	phaseHandler PhaseHandler
}

func defaultOptions() options {
	return options{
		output: os.Stdout,
		logger: log.NewNoopLogger(),
	}
}

// WithOutput sets the writer records are rendered to. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithLogger sets a logger for diagnostics. Defaults to a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPhaseHandler sets a handler for run phase changes.
func WithPhaseHandler(h PhaseHandler) Option {
	return func(o *options) {
		o.phaseHandler = h
	}
}
