package app

import (
	"fmt"
	"sync"

	"github.com/bft-labs/linemark/internal/domain"
	"github.com/bft-labs/linemark/internal/ports"
)

// Phase is the stage an annotation run has reached.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseOpened
	PhaseReading
	PhaseClosed
	PhasePrinting
	PhaseDone
	PhaseFailed
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseOpened:
		return "Opened"
	case PhaseReading:
		return "Reading"
	case PhaseClosed:
		return "Closed"
	case PhasePrinting:
		return "Printing"
	case PhaseDone:
		return "Done"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// PhaseEmitter is called when a run changes phase.
type PhaseEmitter interface {
	OnPhaseChange(previous, current Phase, path string)
}

// Lifecycle tracks the phases of a single annotation run:
// Idle → Opened → Reading → Closed → Printing → Done, with Failed reachable
// from any phase before Done.
type Lifecycle struct {
	mu      sync.RWMutex
	phase   Phase
	path    string
	logger  ports.Logger
	emitter PhaseEmitter
}

// NewLifecycle creates a lifecycle for a run over path.
func NewLifecycle(path string, logger ports.Logger, emitter PhaseEmitter) *Lifecycle {
	return &Lifecycle{
		phase:   PhaseIdle,
		path:    path,
		logger:  logger,
		emitter: emitter,
	}
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.phase
}

// TransitionTo moves the run to next.
// Returns ErrInvalidTransition if next does not follow the current phase.
func (l *Lifecycle) TransitionTo(next Phase) error {
	l.mu.Lock()
	prev := l.phase
	if !validTransition(prev, next) {
		l.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, prev, next)
	}
	l.phase = next
	l.mu.Unlock()

	if l.emitter != nil {
		l.emitter.OnPhaseChange(prev, next, l.path)
	}

	l.logger.Debug("phase transition",
		ports.String("file", l.path),
		ports.String("from", prev.String()),
		ports.String("to", next.String()),
	)
	return nil
}

// Fail moves the run to PhaseFailed unless it already finished.
func (l *Lifecycle) Fail() {
	if err := l.TransitionTo(PhaseFailed); err != nil {
		l.logger.Debug("fail ignored", ports.Err(err))
	}
}

func validTransition(from, to Phase) bool {
	if to == PhaseFailed {
		return from != PhaseDone && from != PhaseFailed
	}
	switch from {
	case PhaseIdle:
		return to == PhaseOpened
	case PhaseOpened:
		return to == PhaseReading
	case PhaseReading:
		return to == PhaseClosed
	case PhaseClosed:
		return to == PhasePrinting
	case PhasePrinting:
		return to == PhaseDone
	}
	return false
}
