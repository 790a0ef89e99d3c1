package engine

import (
	"strings"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

// Suggestion texts.
const (
	SuggestMoreDetail   = "Consider adding more detail to the narrative to better describe the work performed"
	SuggestOutcomes     = "Consider including outcomes or results achieved"
	SuggestGrouping     = "Consider grouping related work types to keep the narrative focused"
	SuggestDescriptions = "Some entry descriptions are brief; expanding them will improve narrative quality"

	minNarrativeLength   = 50
	maxCategories        = 3
	minDescriptionLength = 10
)

// Suggestions lists improvements for a generated narrative.
func (e *Engine) Suggestions(narrative string, entries []domain.TimeEntry) []string {
	suggestions := []string{}

	if len(narrative) < minNarrativeLength {
		suggestions = append(suggestions, SuggestMoreDetail)
	}
	if !containsAny(strings.ToLower(narrative), e.outcomeLanguage) {
		suggestions = append(suggestions, SuggestOutcomes)
	}

	categories := make(map[domain.CategoryLabel]bool)
	brief := false
	for _, entry := range entries {
		categories[e.classifier.Classify(entry.Description)] = true
		if len(strings.TrimSpace(entry.Description)) < minDescriptionLength {
			brief = true
		}
	}
	if len(categories) > maxCategories {
		suggestions = append(suggestions, SuggestGrouping)
	}
	if brief {
		suggestions = append(suggestions, SuggestDescriptions)
	}
	return suggestions
}

// Alternatives rewrites the primary narrative with each variant rewriter.
// A variant is kept only if it differs from the primary and from every
// variant already kept.
func Alternatives(primary string, variants []driven.Rewriter) []string {
	out := []string{}
	seen := map[string]bool{primary: true}
	for _, rw := range variants {
		alt := FormatNarrative(rw.Rewrite(primary))
		if alt == "" || seen[alt] {
			continue
		}
		seen[alt] = true
		out = append(out, alt)
	}
	return out
}
