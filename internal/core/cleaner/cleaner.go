package cleaner

import (
	"context"
	"unicode/utf8"

	"github.com/baditaflorin/go_text_cleaner/internal/core/domain"
	"github.com/baditaflorin/go_text_cleaner/internal/ports"
)

// Calculator implements the normalize-then-diff cleanup pipeline.
type Calculator struct {
	logger     ports.Logger
	normalizer ports.Normalizer
	differ     ports.Differ
}

// NewCalculator creates a new cleanup calculator.
func NewCalculator(logger ports.Logger, normalizer ports.Normalizer, differ ports.Differ) *Calculator {
	return &Calculator{
		logger:     logger,
		normalizer: normalizer,
		differ:     differ,
	}
}

// Clean canonicalizes text and computes the character-level diff between the
// input and the cleaned output. It fails only when the differ's comparison
// budget is exceeded or the context is cancelled; normalization itself is
// total.
func (c *Calculator) Clean(ctx context.Context, text string) (domain.Result, error) {
	c.logger.Debug("Starting text cleanup", "input_bytes", len(text))

	details := make(map[string]interface{})

	if text == "" {
		details["empty_input"] = true
		return domain.Result{
			Name:    "text_cleanup",
			Details: details,
		}, nil
	}

	cleaned := c.normalizer.Normalize(text)

	// Check for context cancellation between the two stages.
	select {
	case <-ctx.Done():
		c.logger.Error("Cleanup cancelled", "error", ctx.Err())
		return domain.Result{}, ctx.Err()
	default:
		// continue
	}

	segments, err := c.differ.Diff(ctx, text, cleaned)
	if err != nil {
		c.logger.Error("Diff computation failed", "error", err)
		return domain.Result{}, err
	}

	originalLen := utf8.RuneCountInString(text)
	cleanedLen := utf8.RuneCountInString(cleaned)
	changed := cleaned != text

	details["original_length"] = originalLen
	details["cleaned_length"] = cleanedLen
	details["segments"] = len(segments)

	c.logger.Debug("Computed text cleanup",
		"changed", changed,
		"original_length", originalLen,
		"cleaned_length", cleanedLen,
		"segments", len(segments),
	)

	return domain.Result{
		Name:           "text_cleanup",
		CleanedText:    cleaned,
		Segments:       segments,
		Changed:        changed,
		OriginalLength: originalLen,
		CleanedLength:  cleanedLen,
		Details:        details,
	}, nil
}
