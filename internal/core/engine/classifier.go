package engine

import (
	"strings"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

type categoryTerms struct {
	label domain.CategoryLabel
	terms []string
}

// Classifier assigns a work category to an entry description.
type Classifier struct {
	categories []categoryTerms
	fallback   []categoryTerms
	def        domain.CategoryLabel
}

// NewClassifier builds a classifier from the vocabulary's category tables
// and fallback rules. Terms are lower-cased once here.
func NewClassifier(vocab *domain.Vocabulary) *Classifier {
	c := &Classifier{def: vocab.DefaultCategory}
	for _, cat := range vocab.Categories {
		terms := lowerAll(cat.Verbs)
		terms = append(terms, lowerAll(cat.Objects)...)
		c.categories = append(c.categories, categoryTerms{label: cat.Label, terms: terms})
	}
	for _, rule := range vocab.FallbackRules {
		c.fallback = append(c.fallback, categoryTerms{label: rule.Category, terms: lowerAll(rule.Words)})
	}
	return c
}

// Classify returns the first category whose vocabulary occurs in the
// description, then the first matching fallback rule, then the default.
// It never fails.
func (c *Classifier) Classify(description string) domain.CategoryLabel {
	text := strings.ToLower(description)

	if label, ok := firstMatch(c.categories, text); ok {
		return label
	}
	if label, ok := firstMatch(c.fallback, text); ok {
		return label
	}
	return c.def
}

func firstMatch(rules []categoryTerms, text string) (domain.CategoryLabel, bool) {
	for _, rule := range rules {
		for _, term := range rule.terms {
			if strings.Contains(text, term) {
				return rule.label, true
			}
		}
	}
	return "", false
}
