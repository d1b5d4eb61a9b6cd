package ports

import (
	"context"

	"github.com/baditaflorin/go_text_cleaner/internal/core/domain"
)

// Differ defines the interface for computing a character-level diff between
// an original text and its cleaned form.
type Differ interface {
	Diff(ctx context.Context, original, cleaned string) ([]domain.Segment, error)
}
