package driving

import (
	"context"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// NarrativeService generates and validates fee narratives.
type NarrativeService interface {
	// Generate composes a narrative from the entries' work groups.
	// Returns an error wrapping domain.ErrInvalidInput for empty entries or a nil matter.
	Generate(ctx context.Context, req domain.NarrativeRequest) (*domain.GeneratedNarrative, error)

	// GenerateCompliant fills the Bar-compliant template for the detected or
	// requested narrative type and attaches a compliance check.
	GenerateCompliant(ctx context.Context, req domain.NarrativeRequest) (*domain.GeneratedNarrative, error)

	// Validate checks any narrative text against the compliance rules.
	Validate(text string) domain.ComplianceCheck

	// Classify returns the work category for an entry description.
	Classify(description string) domain.CategoryLabel

	// Detect returns the narrative type the entries and matter point to.
	Detect(entries []domain.TimeEntry, matter *domain.Matter) domain.NarrativeType

	// History returns recorded narratives, newest first.
	// Returns an empty list when no record store is configured.
	History(ctx context.Context, limit int) ([]domain.NarrativeRecord, error)

	// Replay regenerates a recorded narrative from its seed using the same
	// entries and matter, and reports whether the text is byte-identical.
	Replay(ctx context.Context, recordID string, req domain.NarrativeRequest) (*domain.ReplayResult, error)

	// VocabularyVersion returns the version of the wording tables in use.
	VocabularyVersion() string

	// Vocabulary returns the wording tables in use. Callers must not modify it.
	Vocabulary() *domain.Vocabulary
}
