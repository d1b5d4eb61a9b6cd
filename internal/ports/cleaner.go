package ports

import (
	"context"

	"github.com/baditaflorin/go_text_cleaner/internal/core/domain"
)

// TextCleaner defines the interface for the full normalize-then-diff pipeline.
type TextCleaner interface {
	Clean(ctx context.Context, text string) (domain.Result, error)
}
