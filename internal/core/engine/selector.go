package engine

import (
	"math/rand/v2"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

// Ensure the selectors implement the interface.
var (
	_ driven.PhraseSelector = (*SeededSelector)(nil)
	_ driven.PhraseSelector = (*CursorSelector)(nil)
)

// pcgStream is the fixed PCG stream; only the seed varies between narratives.
const pcgStream = 0x9e3779b97f4a7c15

// SeededSelector picks phrases from a PCG generator. The same seed yields
// the same sequence of picks.
type SeededSelector struct {
	rng *rand.Rand
}

// NewSeededSelector creates a selector seeded with seed.
func NewSeededSelector(seed uint64) *SeededSelector {
	return &SeededSelector{rng: rand.New(rand.NewPCG(seed, pcgStream))}
}

// NewSelector is the default driven.SelectorFactory.
func NewSelector(seed uint64) driven.PhraseSelector {
	return NewSeededSelector(seed)
}

// Pick returns a random item, or "" for an empty list.
func (s *SeededSelector) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.rng.IntN(len(items))]
}

// Float64 returns a value in [0, 1).
func (s *SeededSelector) Float64() float64 {
	return s.rng.Float64()
}

// CursorSelector walks each list with a shared cursor. It makes output
// predictable in tests and in "first phrase" previews.
type CursorSelector struct {
	cursor int
	value  float64
}

// NewCursorSelector creates a selector starting at cursor start whose
// Float64 always returns value.
func NewCursorSelector(start int, value float64) *CursorSelector {
	if start < 0 {
		start = 0
	}
	return &CursorSelector{cursor: start, value: value}
}

// Pick returns items[cursor % len(items)] and advances the cursor.
func (c *CursorSelector) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	item := items[c.cursor%len(items)]
	c.cursor++
	return item
}

// Float64 returns the configured value.
func (c *CursorSelector) Float64() float64 {
	return c.value
}
