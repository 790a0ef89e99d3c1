package driven

// PhraseSelector chooses wording from controlled vocabularies.
//
// Implementations must be driven by an explicit seed or cursor, never by a
// hidden global generator, so that a narrative can be reproduced exactly.
// A selector is stateful and not required to be safe for concurrent use:
// give each generation call its own instance.
type PhraseSelector interface {
	// Pick returns one item from the list. Returns "" for an empty list.
	Pick(items []string) string

	// Float64 returns a value in [0, 1) used for probabilistic choices.
	Float64() float64
}

// SelectorFactory creates a fresh PhraseSelector for a seed.
type SelectorFactory func(seed uint64) PhraseSelector
