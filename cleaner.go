// cleaner.go
// Package textcleaner strips characters and patterns commonly introduced by
// AI writing tools and rich-text editors (smart quotes, em/en dashes,
// zero-width and non-breaking spaces, markdown emphasis markers, hidden
// formatting characters) and computes a character-level diff between the
// original and the cleaned text, so a caller can render exactly which spans
// were preserved, inserted, or deleted.
//
// The package exposes two pure operations, Normalize and Diff, plus a
// configurable Cleaner that runs them as a pipeline. This version uses the
// functional options pattern to allow configuration of parameters like the
// comparison budget and logging.
package textcleaner

import (
	"context"

	"github.com/baditaflorin/go_text_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_text_cleaner/internal/adapters/normalizer"
	"github.com/baditaflorin/go_text_cleaner/internal/core/cleaner"
	"github.com/baditaflorin/go_text_cleaner/internal/core/diff"
	"github.com/baditaflorin/go_text_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_text_cleaner/internal/core/normalize"
	"github.com/baditaflorin/l"
)

// Segment is one maximal run of the character-level diff.
type Segment = domain.Segment

// SegmentKind classifies a diff segment.
type SegmentKind = domain.SegmentKind

// Result holds the outcome of a cleanup computation.
type Result = domain.Result

// Segment kinds, re-exported for callers of the root API.
const (
	Equal  = domain.Equal
	Insert = domain.Insert
	Delete = domain.Delete
)

// ErrTextTooLarge is returned by Diff when aligning the texts would exceed
// the configured comparison budget.
var ErrTextTooLarge = diff.ErrTextTooLarge

// Config holds configuration options for the text cleaner.
type Config struct {
	MaxCompareCells int64
	// Logger for tracing computation steps.
	Logger l.Logger
}

// Option defines a functional option for configuring the cleaner.
type Option func(*Config)

// WithMaxCompareCells sets a custom comparison budget for the differ.
func WithMaxCompareCells(cells int64) Option {
	return func(cfg *Config) {
		cfg.MaxCompareCells = cells
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// Cleaner runs the normalize-then-diff pipeline with configurable
// parameters.
type Cleaner struct {
	pipeline *cleaner.Calculator
}

// New creates a new Cleaner with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*Cleaner, error) {
	cfg := Config{
		MaxCompareCells: diff.DefaultConfig().MaxCompareCells,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// If no logger is set, create a default logger.
	if cfg.Logger == nil {
		lg, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = lg
	}
	ported := logger.FromExisting(cfg.Logger)

	differ, err := diff.NewDiffer(diff.Config{MaxCompareCells: cfg.MaxCompareCells}, ported)
	if err != nil {
		return nil, err
	}

	return &Cleaner{
		pipeline: cleaner.NewCalculator(ported, normalizer.NewDefaultNormalizer(), differ),
	}, nil
}

// Clean canonicalizes text and returns the cleaned output together with the
// ordered diff segments.
func (c *Cleaner) Clean(ctx context.Context, text string) (Result, error) {
	return c.pipeline.Clean(ctx, text)
}

// Normalize applies the default substitution rules to text. It is a total
// function: characters matched by no rule pass through unchanged, and
// re-normalizing already-canonical text yields it back.
func Normalize(text string) string {
	return defaultEngine.Normalize(text)
}

var defaultEngine = normalize.NewDefaultEngine()
