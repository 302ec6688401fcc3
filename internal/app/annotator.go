package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bft-labs/linemark/internal/domain"
	"github.com/bft-labs/linemark/internal/ports"
)

// SourceFactory opens a line source for a path.
type SourceFactory func(path string) ports.LineSource

// AnnotatorConfig contains configuration for the annotation loop.
type AnnotatorConfig struct {
	Revision domain.Revision
}

// Annotator reads a file, annotates each qualifying line and writes the
// rendered records once the whole file has been read.
type Annotator struct {
	config    AnnotatorConfig
	newSource SourceFactory
	ids       ports.IDGenerator
	logger    ports.Logger
	emitter   PhaseEmitter
}

// NewAnnotator creates a new annotator with the given dependencies.
func NewAnnotator(
	config AnnotatorConfig,
	newSource SourceFactory,
	ids ports.IDGenerator,
	logger ports.Logger,
	emitter PhaseEmitter,
) *Annotator {
	return &Annotator{
		config:    config,
		newSource: newSource,
		ids:       ids,
		logger:    logger,
		emitter:   emitter,
	}
}

// Run annotates the file at path and writes one rendered record per line to w.
// Nothing is written unless every line was read successfully.
func (a *Annotator) Run(ctx context.Context, path string, w io.Writer) ([]domain.Record, error) {
	start := time.Now()
	lc := NewLifecycle(path, a.logger, a.emitter)

	records, err := a.collect(ctx, path, lc)
	if err != nil {
		lc.Fail()
		return nil, err
	}

	if err := lc.TransitionTo(PhasePrinting); err != nil {
		return nil, err
	}
	if err := writeRecords(w, records); err != nil {
		lc.Fail()
		return nil, err
	}
	if err := lc.TransitionTo(PhaseDone); err != nil {
		return nil, err
	}

	a.logger.Info("annotated file",
		ports.String("file", path),
		ports.Int("records", len(records)),
		ports.Duration("took", time.Since(start)),
	)
	return records, nil
}

// Collect reads the file at path and returns its records without writing them.
func (a *Annotator) Collect(ctx context.Context, path string) ([]domain.Record, error) {
	lc := NewLifecycle(path, a.logger, a.emitter)
	records, err := a.collect(ctx, path, lc)
	if err != nil {
		lc.Fail()
		return nil, err
	}
	return records, nil
}

// collect leaves lc in PhaseClosed on success. The source is closed on every path.
func (a *Annotator) collect(ctx context.Context, path string, lc *Lifecycle) (records []domain.Record, err error) {
	src := a.newSource(path)
	if err := src.Open(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			a.logger.Warn("close failed", ports.String("file", path), ports.Err(cerr))
		}
		if err == nil {
			err = lc.TransitionTo(PhaseClosed)
		}
	}()

	if err := lc.TransitionTo(PhaseOpened); err != nil {
		return nil, err
	}
	if err := lc.TransitionTo(PhaseReading); err != nil {
		return nil, err
	}

	rev := a.config.Revision
	skipped := 0
	for {
		line, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, ports.ErrNoMoreLines) {
				break
			}
			return nil, err
		}
		if !rev.Qualifies(line) {
			skipped++
			continue
		}
		records = append(records, domain.NewRecord(a.ids.NewID(), line))
	}

	a.logger.Debug("read complete",
		ports.String("file", path),
		ports.Int("records", len(records)),
		ports.Int("skipped", skipped),
	)
	return records, nil
}

func writeRecords(w io.Writer, records []domain.Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		if _, err := fmt.Fprintln(bw, r.String()); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush records: %w", err)
	}
	return nil
}
