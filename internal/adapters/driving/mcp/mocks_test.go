package mcp

import (
	"context"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driving"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/vocabulary"
)

// mockNarrativeService is a mock implementation of driving.NarrativeService.
type mockNarrativeService struct {
	narrative *domain.GeneratedNarrative
	check     domain.ComplianceCheck
	records   []domain.NarrativeRecord
	err       error

	lastRequest domain.NarrativeRequest
}

var _ driving.NarrativeService = (*mockNarrativeService)(nil)

func (m *mockNarrativeService) Generate(_ context.Context, req domain.NarrativeRequest) (*domain.GeneratedNarrative, error) {
	m.lastRequest = req
	return m.narrative, m.err
}

func (m *mockNarrativeService) GenerateCompliant(_ context.Context, req domain.NarrativeRequest) (*domain.GeneratedNarrative, error) {
	m.lastRequest = req
	return m.narrative, m.err
}

func (m *mockNarrativeService) Validate(_ string) domain.ComplianceCheck {
	return m.check
}

func (m *mockNarrativeService) Classify(description string) domain.CategoryLabel {
	if description == "Drafted heads of argument" {
		return domain.CategoryDrafting
	}
	return domain.CategoryResearch
}

func (m *mockNarrativeService) Detect(_ []domain.TimeEntry, _ *domain.Matter) domain.NarrativeType {
	return domain.NarrativeGeneral
}

func (m *mockNarrativeService) History(_ context.Context, _ int) ([]domain.NarrativeRecord, error) {
	return m.records, m.err
}

func (m *mockNarrativeService) Replay(_ context.Context, _ string, _ domain.NarrativeRequest) (*domain.ReplayResult, error) {
	return nil, m.err
}

func (m *mockNarrativeService) VocabularyVersion() string {
	return "test"
}

func (m *mockNarrativeService) Vocabulary() *domain.Vocabulary {
	return vocabulary.MustDefault()
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	defaults domain.NarrativeOptions
}

var _ driving.SettingsService = (*mockSettingsService)(nil)

func (m *mockSettingsService) Defaults() domain.NarrativeOptions       { return m.defaults }
func (m *mockSettingsService) Save(opts domain.NarrativeOptions) error { m.defaults = opts; return nil }
func (m *mockSettingsService) Rewriters() []string                     { return nil }
func (m *mockSettingsService) StorageBackend() string                  { return "memory" }
func (m *mockSettingsService) HistoryLimit() int                       { return 20 }
