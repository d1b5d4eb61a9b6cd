package normalize

// Engine applies an ordered list of substitution rules. Each rule runs once,
// left to right over the previous rule's output; the full pass is idempotent
// because every rule rewrites into plain ASCII or preserved emoji.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine for the given rule list. Most callers want
// NewDefaultEngine.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// NewDefaultEngine creates an engine with the default rule table.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultRules())
}

// Normalize applies every rule in declared order. It is a total function:
// unmatched characters pass through unchanged and empty input stays empty.
func (e *Engine) Normalize(text string) string {
	if text == "" {
		return ""
	}
	for _, r := range e.rules {
		text = r.Apply(text)
	}
	return text
}

// Rules returns the engine's rule list in application order.
func (e *Engine) Rules() []Rule {
	return e.rules
}
