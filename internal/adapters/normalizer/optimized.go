package normalizer

import (
	"github.com/baditaflorin/go_text_cleaner/internal/core/normalize"
	"github.com/baditaflorin/go_text_cleaner/internal/ports"
)

// OptimizedNormalizer adds a zero-allocation fast path for text that no rule
// can touch. All substitution rules match either non-ASCII runes or the two
// ASCII marker bytes '*' and '#', so input consisting solely of other ASCII
// bytes is already canonical and is returned as is.
type OptimizedNormalizer struct {
	// Pre-computed decision table for ASCII bytes (0-127):
	// true = byte can never be rewritten by any rule
	asciiClean [128]bool

	engine *normalize.Engine
}

// NewOptimizedNormalizer creates a new optimized normalizer over the default
// rule table.
func NewOptimizedNormalizer() ports.Normalizer {
	n := &OptimizedNormalizer{
		engine: normalize.NewDefaultEngine(),
	}

	for i := 0; i < 128; i++ {
		n.asciiClean[i] = i != '*' && i != '#'
	}

	return n
}

// Normalize returns the input unchanged when the fast path proves it clean,
// and otherwise delegates to the rule engine.
func (n *OptimizedNormalizer) Normalize(text string) string {
	// Fast path for empty strings
	if len(text) == 0 {
		return ""
	}

	clean := true
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b >= 128 || !n.asciiClean[b] {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	return n.engine.Normalize(text)
}

// NormalizerFactory creates the appropriate normalizer based on performance
// requirements.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects the normalizer implementation to create.
type NormalizerType int

const (
	// DefaultNormalizerType runs the rule engine unconditionally
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType short-circuits already-canonical ASCII input
	OptimizedNormalizerType
)

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
