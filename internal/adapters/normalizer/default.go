package normalizer

import (
	"github.com/baditaflorin/go_text_cleaner/internal/core/normalize"
	"github.com/baditaflorin/go_text_cleaner/internal/ports"
)

// DefaultNormalizer runs the default substitution rule table through the
// core engine.
type DefaultNormalizer struct {
	engine *normalize.Engine
}

// NewDefaultNormalizer creates a normalizer with the default rule table.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{engine: normalize.NewDefaultEngine()}
}

// NewRuleNormalizer creates a normalizer with a custom rule table. Callers
// extending the rule set are responsible for preserving the documented
// ordering constraints.
func NewRuleNormalizer(rules []normalize.Rule) ports.Normalizer {
	return &DefaultNormalizer{engine: normalize.NewEngine(rules)}
}

// Normalize applies the rule table to the text.
func (n *DefaultNormalizer) Normalize(text string) string {
	return n.engine.Normalize(text)
}
