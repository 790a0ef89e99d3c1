package driven

// Rewriter produces an alternative phrasing of a finished narrative.
// Rewriters are chained in a pipeline or run independently to build variants.
type Rewriter interface {
	// Name returns the rewriter name for logging and configuration.
	Name() string

	// Rewrite returns the rewritten text. It must not fail: a rewriter that has
	// nothing to change returns its input unchanged.
	Rewrite(text string) string
}
