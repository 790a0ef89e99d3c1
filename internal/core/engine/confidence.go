package engine

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// Confidence bounds.
const (
	MinConfidence = 0.3
	MaxConfidence = 0.95
)

// Confidence scores how much the narrative can be relied on without edits.
// More entries and a longer narrative raise it; terse descriptions lower it.
func Confidence(entries []domain.TimeEntry, narrative string) float64 {
	score := 0.7
	if len(entries) > 1 {
		score += 0.1
	}
	if len(entries) > 5 {
		score += 0.1
	}

	words := len(strings.Fields(narrative))
	if words > 20 {
		score += 0.05
	}
	if words > 50 {
		score += 0.05
	}

	if len(entries) > 0 {
		chars := 0
		for _, e := range entries {
			chars += utf8.RuneCountInString(strings.TrimSpace(e.Description))
		}
		if float64(chars)/float64(len(entries)) < 20 {
			score -= 0.1
		}
	}

	score = min(max(score, MinConfidence), MaxConfidence)
	return math.Round(score*100) / 100
}
