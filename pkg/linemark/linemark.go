package linemark

import (
	"context"
	"time"

	"github.com/bft-labs/linemark/internal/adapters/fs"
	"github.com/bft-labs/linemark/internal/adapters/id"
	"github.com/bft-labs/linemark/internal/app"
	"github.com/bft-labs/linemark/internal/domain"
	"github.com/bft-labs/linemark/internal/ports"
)

// Record is one annotated line.
type Record = domain.Record

// Revision selects which historical annotation behaviour to reproduce.
type Revision = domain.Revision

// Annotation revisions.
const (
	RevisionLegacy  = domain.RevisionLegacy
	RevisionFreshID = domain.RevisionFreshID
	RevisionCurrent = domain.RevisionCurrent
)

// Errors returned by the annotator, wrapped; check with errors.Is.
var (
	ErrFileNotFound  = domain.ErrFileNotFound
	ErrRead          = domain.ErrRead
	ErrInvalidConfig = domain.ErrInvalidConfig
)

// Config holds annotator settings. The zero value selects RevisionCurrent.
type Config struct {
	Revision Revision

	// WatchDebounce is the delay after a change before re-annotating.
	// Default: 100 milliseconds
	WatchDebounce time.Duration
}

// SetDefaults fills zero fields with defaults.
func (c *Config) SetDefaults() {
	if c.Revision == 0 {
		c.Revision = domain.DefaultRevision
	}
	if c.WatchDebounce <= 0 {
		c.WatchDebounce = app.DefaultDebounce
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	return c.Revision.Validate()
}

// Annotator annotates files and writes the rendered records.
type Annotator struct {
	config Config
	opts   options
	core   *app.Annotator
}

// New creates an Annotator. Returns ErrInvalidConfig for an unknown revision.
func New(cfg Config, opts ...Option) (*Annotator, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var ids ports.IDGenerator = id.RandomGenerator{}
	if !cfg.Revision.FreshIDs() {
		ids = id.NilGenerator{}
	}

	var emitter app.PhaseEmitter
	if o.phaseHandler != nil {
		emitter = o.phaseHandler
	}

	core := app.NewAnnotator(
		app.AnnotatorConfig{Revision: cfg.Revision},
		func(path string) ports.LineSource { return fs.NewFileLineSource(path) },
		ids,
		o.logger,
		emitter,
	)

	return &Annotator{config: cfg, opts: o, core: core}, nil
}

// Annotate reads the file at path and writes its records to the configured output.
// Nothing is written if the file cannot be read completely.
func (a *Annotator) Annotate(ctx context.Context, path string) ([]Record, error) {
	return a.core.Run(ctx, path, a.opts.output)
}

// Collect reads the file at path and returns its records without writing them.
func (a *Annotator) Collect(ctx context.Context, path string) ([]Record, error) {
	return a.core.Collect(ctx, path)
}

// Watch annotates the file at path, then again after each change, until ctx is canceled.
// Failed passes are logged and do not end the watch.
func (a *Annotator) Watch(ctx context.Context, path string) error {
	w := app.NewWatcher(path, a.config.WatchDebounce, func(ctx context.Context) error {
		_, err := a.Annotate(ctx, path)
		return err
	}, a.opts.logger)
	return w.Run(ctx)
}

// Config returns the effective configuration.
func (a *Annotator) Config() Config {
	return a.config
}
