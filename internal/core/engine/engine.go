package engine

import (
	"fmt"
	"strings"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/rewriters"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/rewriters/substitute"
)

// Engine generates fee narratives from time entries.
type Engine struct {
	vocab           *domain.Vocabulary
	classifier      *Classifier
	narrator        *Narrator
	detector        *Detector
	templates       *TemplateEngine
	validator       *Validator
	formal          driven.Rewriter
	variants        []driven.Rewriter
	outcomeLanguage []string
}

// Option configures an Engine.
type Option func(*Engine)

// WithVariants replaces the rewriters used to build alternative versions.
func WithVariants(variants ...driven.Rewriter) Option {
	return func(e *Engine) {
		e.variants = variants
	}
}

// WithFormal replaces the rewriter applied for formal tone.
func WithFormal(formal driven.Rewriter) Option {
	return func(e *Engine) {
		if formal != nil {
			e.formal = formal
		}
	}
}

// New creates an engine. The vocabulary is validated and every narrative
// type must have a template.
func New(vocab *domain.Vocabulary, templates map[domain.NarrativeType]string, opts ...Option) (*Engine, error) {
	if vocab == nil {
		return nil, fmt.Errorf("%w: vocabulary is nil", domain.ErrInvalidVocabulary)
	}
	if err := vocab.Validate(); err != nil {
		return nil, err
	}

	classifier := NewClassifier(vocab)
	tmpl, err := NewTemplateEngine(vocab, classifier, templates)
	if err != nil {
		return nil, err
	}

	variants, err := rewriters.DefaultVariants(vocab)
	if err != nil {
		return nil, fmt.Errorf("build variants: %w", err)
	}

	e := &Engine{
		vocab:           vocab,
		classifier:      classifier,
		narrator:        NewNarrator(vocab, classifier),
		detector:        NewDetector(vocab),
		templates:       tmpl,
		validator:       NewValidator(vocab),
		formal:          substitute.New(rewriters.NameFormal, vocab.FormalSubstitutions),
		variants:        variants,
		outcomeLanguage: lowerAll(vocab.OutcomeLanguage),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// VocabularyVersion returns the version of the wording tables.
func (e *Engine) VocabularyVersion() string {
	return e.vocab.Version
}

// VariantNames returns the names of the rewriters building alternative versions.
func (e *Engine) VariantNames() []string {
	names := make([]string, len(e.variants))
	for i, rw := range e.variants {
		names[i] = rw.Name()
	}
	return names
}

// Vocabulary returns the engine's vocabulary. Callers must not modify it.
func (e *Engine) Vocabulary() *domain.Vocabulary {
	return e.vocab
}

// Classify returns the work category for a description.
func (e *Engine) Classify(description string) domain.CategoryLabel {
	return e.classifier.Classify(description)
}

// Detect returns the narrative type for entries and matter.
func (e *Engine) Detect(entries []domain.TimeEntry, matter *domain.Matter) domain.NarrativeType {
	nt, _ := e.detector.Detect(entries, matter)
	return nt
}

// Validate checks narrative text against the compliance rules.
func (e *Engine) Validate(text string) domain.ComplianceCheck {
	return e.validator.Validate(text)
}

// Generate runs the standard pipeline: group, narrate each group, compose
// and format.
func (e *Engine) Generate(entries []domain.TimeEntry, matter *domain.Matter, opts domain.NarrativeOptions, sel driven.PhraseSelector) (*domain.GeneratedNarrative, error) {
	if err := validateInput(entries, matter); err != nil {
		return nil, err
	}

	mode := domain.GroupByDate
	if opts.GroupByWorkType {
		mode = domain.GroupByCategory
	}
	groups := GroupEntries(entries, mode, e.classifier)

	sections := make([]string, 0, len(groups))
	for _, g := range groups {
		sections = append(sections, e.narrator.Section(g, matter, opts, sel))
	}

	text := Compose(sections, e.vocab.SectionConnectives, sel)
	if opts.FormalTone {
		text = e.formal.Rewrite(text)
	}
	text = FormatNarrative(text)

	return e.result(text, entries), nil
}

// GenerateCompliant renders the Bar-compliant template for the requested or
// detected narrative type and attaches a compliance check. Compliance
// recommendations are appended to the suggestions.
func (e *Engine) GenerateCompliant(entries []domain.TimeEntry, matter *domain.Matter, opts domain.NarrativeOptions, sel driven.PhraseSelector) (*domain.GeneratedNarrative, error) {
	if err := validateInput(entries, matter); err != nil {
		return nil, err
	}

	nt := opts.NarrativeType
	switch {
	case nt == "":
		nt = e.Detect(entries, matter)
	case !nt.IsValid():
		return nil, fmt.Errorf("%w: narrative type %q", domain.ErrUnsupportedType, nt)
	}

	text, err := e.templates.Render(nt, entries, matter, opts)
	if err != nil {
		return nil, err
	}

	out := e.result(text, entries)
	check := e.validator.Validate(text)
	out.Compliance = &check
	out.NarrativeType = nt
	out.Suggestions = append(out.Suggestions, check.Recommendations...)
	return out, nil
}

func (e *Engine) result(text string, entries []domain.TimeEntry) *domain.GeneratedNarrative {
	return &domain.GeneratedNarrative{
		Narrative:           text,
		WordCount:           len(strings.Fields(text)),
		Confidence:          Confidence(entries, text),
		Suggestions:         e.Suggestions(text, entries),
		AlternativeVersions: Alternatives(text, e.variants),
		VocabularyVersion:   e.vocab.Version,
	}
}

func validateInput(entries []domain.TimeEntry, matter *domain.Matter) error {
	if len(entries) == 0 {
		return domain.NewInvalidInputError("entries", "at least one time entry is required")
	}
	if matter == nil {
		return domain.NewInvalidInputError("matter", "matter is required")
	}
	for i, e := range entries {
		if e.DurationMinutes <= 0 {
			return domain.NewInvalidInputError(
				fmt.Sprintf("entries[%d].duration_minutes", i),
				fmt.Sprintf("must be positive, got %d", e.DurationMinutes))
		}
	}
	return nil
}
