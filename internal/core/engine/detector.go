package engine

import (
	"strings"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// TypeScores are the keyword hit counts behind a detection.
type TypeScores struct {
	Litigation int
	Advisory   int
}

// Detector infers the narrative type from entry and matter text.
type Detector struct {
	litigation []string
	advisory   []string
}

// NewDetector creates a detector from the vocabulary keyword lists.
func NewDetector(vocab *domain.Vocabulary) *Detector {
	return &Detector{
		litigation: lowerAll(vocab.LitigationKeywords),
		advisory:   lowerAll(vocab.AdvisoryKeywords),
	}
}

// Detect counts keyword occurrences. Litigation wins ties as long as it has
// at least one hit; no hits at all means general.
func (d *Detector) Detect(entries []domain.TimeEntry, matter *domain.Matter) (domain.NarrativeType, TypeScores) {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Description)
		b.WriteString("\n")
	}
	if matter != nil {
		b.WriteString(matter.Title)
		b.WriteString("\n")
		b.WriteString(matter.Description)
	}
	blob := strings.ToLower(b.String())

	scores := TypeScores{
		Litigation: countAll(blob, d.litigation),
		Advisory:   countAll(blob, d.advisory),
	}

	switch {
	case scores.Litigation > 0 && scores.Litigation >= scores.Advisory:
		return domain.NarrativeLitigation, scores
	case scores.Advisory > scores.Litigation:
		return domain.NarrativeAdvisory, scores
	default:
		return domain.NarrativeGeneral, scores
	}
}

func countAll(text string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		n += strings.Count(text, k)
	}
	return n
}
