// differ.go
// Package-level diff entry point over the default configuration. The diff is
// a longest-common-subsequence alignment at character granularity; see
// internal/core/diff for the algorithm and its resource bounds.
package textcleaner

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_text_cleaner/internal/adapters/logger"
	"github.com/baditaflorin/go_text_cleaner/internal/core/diff"
)

var (
	defaultDifferOnce sync.Once
	defaultDiffer     *diff.Differ
	defaultDifferErr  error
)

// Diff computes the ordered equal/insert/delete segments between an original
// text and its cleaned form using the default comparison budget.
// Concatenating equal+delete segments reproduces original; equal+insert
// reproduces cleaned. It returns ErrTextTooLarge when the texts exceed the
// budget.
func Diff(ctx context.Context, original, cleaned string) ([]Segment, error) {
	defaultDifferOnce.Do(func() {
		lg, err := createDefaultLogger()
		if err != nil {
			defaultDifferErr = err
			return
		}
		defaultDiffer, defaultDifferErr = diff.NewDiffer(diff.DefaultConfig(), logger.FromExisting(lg))
	})
	if defaultDifferErr != nil {
		return nil, defaultDifferErr
	}
	return defaultDiffer.Diff(ctx, original, cleaned)
}
