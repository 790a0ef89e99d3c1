package domain

import (
	"errors"
	"fmt"
)

// FallbackRule maps common words to a category when no vocabulary term matched.
type FallbackRule struct {
	Words    []string      `toml:"words" yaml:"words"`
	Category CategoryLabel `toml:"category" yaml:"category"`
}

// Substitution replaces a whole word or phrase with another.
type Substitution struct {
	From string `toml:"from" yaml:"from"`
	To   string `toml:"to" yaml:"to"`
}

// Vocabulary holds every wording table the engine uses. It is loaded once,
// validated, and treated as read-only afterwards, so legal and compliance teams
// can change wording by shipping a new version of the data.
type Vocabulary struct {
	// Version identifies the wording release and is recorded with each narrative.
	Version string `toml:"version" yaml:"version"`

	// Categories are evaluated in order during classification.
	Categories []WorkCategory `toml:"categories" yaml:"categories"`

	FallbackRules   []FallbackRule `toml:"fallback_rules" yaml:"fallback_rules"`
	DefaultCategory CategoryLabel  `toml:"default_category" yaml:"default_category"`

	// MatterConnectives link a section to the matter ("pursuant to").
	MatterConnectives []string `toml:"matter_connectives" yaml:"matter_connectives"`

	// OutcomeConnectives introduce an outcome phrase ("resulting in").
	OutcomeConnectives []string `toml:"outcome_connectives" yaml:"outcome_connectives"`

	// SectionConnectives prefix every section after the first ("Additionally,").
	SectionConnectives []string `toml:"section_connectives" yaml:"section_connectives"`

	// OutcomeProbability is the chance an outcome phrase is appended to a section.
	OutcomeProbability float64 `toml:"outcome_probability" yaml:"outcome_probability"`

	// BoilerplatePrefixes are stripped from the start of entry descriptions.
	BoilerplatePrefixes []string `toml:"boilerplate_prefixes" yaml:"boilerplate_prefixes"`

	LitigationKeywords []string `toml:"litigation_keywords" yaml:"litigation_keywords"`
	AdvisoryKeywords   []string `toml:"advisory_keywords" yaml:"advisory_keywords"`

	FeeJustificationPhrases []string `toml:"fee_justification_phrases" yaml:"fee_justification_phrases"`
	UnprofessionalWords     []string `toml:"unprofessional_words" yaml:"unprofessional_words"`

	// OutcomeLanguage marks a narrative as describing results.
	OutcomeLanguage []string `toml:"outcome_language" yaml:"outcome_language"`

	DetailedSubstitutions []Substitution `toml:"detailed_substitutions" yaml:"detailed_substitutions"`
	FormalSubstitutions   []Substitution `toml:"formal_substitutions" yaml:"formal_substitutions"`

	// ValueDelivered holds one phrase per narrative type, keyed by type name.
	ValueDelivered map[string]string `toml:"value_delivered" yaml:"value_delivered"`

	// ComplexitySentence and ValueSentence are appended in Bar-compliant mode.
	// Both use the same {{placeholder}} syntax as narrative templates.
	ComplexitySentence string `toml:"complexity_sentence" yaml:"complexity_sentence"`
	ValueSentence      string `toml:"value_sentence" yaml:"value_sentence"`
}

// Category returns the vocabulary for a label.
func (v *Vocabulary) Category(label CategoryLabel) (WorkCategory, bool) {
	for i := range v.Categories {
		if v.Categories[i].Label == label {
			return v.Categories[i], true
		}
	}
	return WorkCategory{}, false
}

// Validate checks the vocabulary is complete enough to build an engine.
func (v *Vocabulary) Validate() error {
	var errs []error

	if v.Version == "" {
		errs = append(errs, errors.New("version is required"))
	}
	if len(v.Categories) == 0 {
		errs = append(errs, errors.New("at least one category is required"))
	}
	for i := range v.Categories {
		c := &v.Categories[i]
		if !c.Label.IsValid() {
			errs = append(errs, fmt.Errorf("category %d: unknown label %q", i, c.Label))
			continue
		}
		if len(c.Verbs) == 0 {
			errs = append(errs, fmt.Errorf("category %s: verbs are required", c.Label))
		}
		if len(c.Outcomes) == 0 {
			errs = append(errs, fmt.Errorf("category %s: outcomes are required", c.Label))
		}
	}
	if !v.DefaultCategory.IsValid() {
		errs = append(errs, fmt.Errorf("default category %q is not a known label", v.DefaultCategory))
	} else if _, ok := v.Category(v.DefaultCategory); !ok {
		errs = append(errs, fmt.Errorf("default category %q has no vocabulary", v.DefaultCategory))
	}
	for i, rule := range v.FallbackRules {
		if _, ok := v.Category(rule.Category); !ok {
			errs = append(errs, fmt.Errorf("fallback rule %d: category %q has no vocabulary", i, rule.Category))
		}
	}
	if len(v.MatterConnectives) == 0 {
		errs = append(errs, errors.New("matter connectives are required"))
	}
	if len(v.OutcomeConnectives) == 0 {
		errs = append(errs, errors.New("outcome connectives are required"))
	}
	if len(v.SectionConnectives) == 0 {
		errs = append(errs, errors.New("section connectives are required"))
	}
	if v.OutcomeProbability < 0 || v.OutcomeProbability > 1 {
		errs = append(errs, fmt.Errorf("outcome probability %v is outside [0, 1]", v.OutcomeProbability))
	}
	if len(v.FeeJustificationPhrases) == 0 {
		errs = append(errs, errors.New("fee justification phrases are required"))
	}
	for _, t := range NarrativeTypes() {
		if v.ValueDelivered[string(t)] == "" {
			errs = append(errs, fmt.Errorf("value delivered phrase for %s is required", t))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidVocabulary, errors.Join(errs...))
	}
	return nil
}
