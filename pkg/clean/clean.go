// Package clean exposes the configurable text-cleanup pipeline: normalize a
// text with the artifact substitution rules, then diff the original against
// the cleaned output at character granularity.
package clean

import (
	"context"

	"github.com/baditaflorin/go_text_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_text_cleaner/internal/adapters/normalizer"
	"github.com/baditaflorin/go_text_cleaner/internal/core/cleaner"
	"github.com/baditaflorin/go_text_cleaner/internal/core/diff"
	"github.com/baditaflorin/go_text_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_text_cleaner/internal/ports"
	"github.com/baditaflorin/go_text_cleaner/internal/warmup"
	"github.com/baditaflorin/l"
)

// TextCleaner provides methods to canonicalize text and report the edits as
// ordered diff segments.
type TextCleaner struct {
	pipeline   ports.TextCleaner
	logger     ports.Logger
	normalizer ports.Normalizer
	differ     ports.Differ
	warmed     bool
}

// TextCleanerOption defines a functional option for configuring TextCleaner.
type TextCleanerOption func(*textCleanerConfig)

type textCleanerConfig struct {
	MaxCompareCells int64
	Logger          ports.Logger
	Normalizer      ports.Normalizer
	WarmUp          bool
	WarmUpConfig    warmup.WarmupConfig
}

// WithMaxCompareCells caps the size of the character alignment the differ is
// willing to compute; texts exceeding it fail with diff.ErrTextTooLarge.
func WithMaxCompareCells(cells int64) TextCleanerOption {
	return func(cfg *textCleanerConfig) {
		cfg.MaxCompareCells = cells
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) TextCleanerOption {
	return func(cfg *textCleanerConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNormalizer sets a custom normalizer.
func WithNormalizer(n ports.Normalizer) TextCleanerOption {
	return func(cfg *textCleanerConfig) {
		cfg.Normalizer = n
	}
}

// WithOptimizedNormalizer sets the normalizer with the ASCII fast path.
func WithOptimizedNormalizer() TextCleanerOption {
	return func(cfg *textCleanerConfig) {
		normFactory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = normFactory.CreateNormalizer(normalizer.OptimizedNormalizerType)
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) TextCleanerOption {
	return func(cfg *textCleanerConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) TextCleanerOption {
	return func(cfg *textCleanerConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new TextCleaner instance.
func New(opts ...TextCleanerOption) (*TextCleaner, error) {
	defaultConfig := diff.DefaultConfig()

	config := &textCleanerConfig{
		MaxCompareCells: defaultConfig.MaxCompareCells,
		WarmUp:          false,
		WarmUpConfig:    warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	differ, err := diff.NewDiffer(diff.Config{MaxCompareCells: config.MaxCompareCells}, config.Logger)
	if err != nil {
		return nil, err
	}

	tc := &TextCleaner{
		pipeline:   cleaner.NewCalculator(config.Logger, config.Normalizer, differ),
		logger:     config.Logger,
		normalizer: config.Normalizer,
		differ:     differ,
		warmed:     false,
	}

	if config.WarmUp {
		tc.WarmUp(context.Background(), config.WarmUpConfig)
	}

	return tc, nil
}

// Clean canonicalizes text and returns the cleaned output together with the
// ordered diff segments.
func (tc *TextCleaner) Clean(ctx context.Context, text string) (domain.Result, error) {
	return tc.pipeline.Clean(ctx, text)
}

// Normalize applies the substitution rules without computing a diff.
func (tc *TextCleaner) Normalize(text string) string {
	return tc.normalizer.Normalize(text)
}

// Diff computes the character-level diff between an original text and its
// cleaned form.
func (tc *TextCleaner) Diff(ctx context.Context, original, cleaned string) ([]domain.Segment, error) {
	return tc.differ.Diff(ctx, original, cleaned)
}

// WarmUp performs system warm-up to optimize performance.
func (tc *TextCleaner) WarmUp(ctx context.Context, config warmup.WarmupConfig) {
	if tc.warmed {
		tc.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(tc.logger, config)
	warmupMgr.RegisterCleaner(tc.pipeline)
	warmupMgr.RegisterNormalizer(tc.normalizer)
	warmupMgr.RegisterDiffer(tc.differ)

	warmupMgr.WarmUp(ctx)
	tc.warmed = true
}
