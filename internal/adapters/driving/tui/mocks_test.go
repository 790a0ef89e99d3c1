package tui

import (
	"context"
	"fmt"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driving"
)

// mockNarrativeService echoes the request seed and mode into the narrative.
type mockNarrativeService struct {
	err error

	requests  []domain.NarrativeRequest
	compliant []bool
}

var _ driving.NarrativeService = (*mockNarrativeService)(nil)

func (m *mockNarrativeService) result(req domain.NarrativeRequest, compliant bool) (*domain.GeneratedNarrative, error) {
	m.requests = append(m.requests, req)
	m.compliant = append(m.compliant, compliant)
	if m.err != nil {
		return nil, m.err
	}
	seed := req.Options.Seed
	if seed == 0 {
		seed = 7
	}
	out := &domain.GeneratedNarrative{
		Narrative:           fmt.Sprintf("Narrative for seed %d.", seed),
		WordCount:           4,
		Confidence:          0.9,
		Suggestions:         []string{"Add the outcome achieved"},
		AlternativeVersions: []string{"First alternative.", "Second alternative."},
		Seed:                seed,
		VocabularyVersion:   "test",
	}
	if compliant {
		out.NarrativeType = domain.NarrativeLitigation
		out.Compliance = &domain.ComplianceCheck{
			IsCompliant:     false,
			Issues:          []string{"Narrative is short"},
			Recommendations: []string{"Describe the work in more detail"},
			ComplianceScore: 80,
		}
	}
	return out, nil
}

func (m *mockNarrativeService) Generate(_ context.Context, req domain.NarrativeRequest) (*domain.GeneratedNarrative, error) {
	return m.result(req, false)
}

func (m *mockNarrativeService) GenerateCompliant(_ context.Context, req domain.NarrativeRequest) (*domain.GeneratedNarrative, error) {
	return m.result(req, true)
}

func (m *mockNarrativeService) Validate(_ string) domain.ComplianceCheck {
	return domain.ComplianceCheck{IsCompliant: true, ComplianceScore: 100}
}

func (m *mockNarrativeService) Classify(_ string) domain.CategoryLabel {
	return domain.CategoryResearch
}

func (m *mockNarrativeService) Detect(_ []domain.TimeEntry, _ *domain.Matter) domain.NarrativeType {
	return domain.NarrativeGeneral
}

func (m *mockNarrativeService) History(_ context.Context, _ int) ([]domain.NarrativeRecord, error) {
	return []domain.NarrativeRecord{}, nil
}

func (m *mockNarrativeService) Replay(_ context.Context, _ string, _ domain.NarrativeRequest) (*domain.ReplayResult, error) {
	return nil, domain.ErrNotFound
}

func (m *mockNarrativeService) VocabularyVersion() string {
	return "test"
}

func (m *mockNarrativeService) Vocabulary() *domain.Vocabulary {
	return nil
}
