package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/vocabulary"
)

// mockMetrics captures metric observations.
type mockMetrics struct {
	mu        sync.Mutex
	generated []string
	rejected  []string
	elapsed   []time.Duration
}

func (m *mockMetrics) ObserveGenerated(mode string, _ domain.NarrativeType, _ float64, _ *domain.ComplianceCheck, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generated = append(m.generated, mode)
	m.elapsed = append(m.elapsed, elapsed)
}

func (m *mockMetrics) ObserveRejected(field string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected = append(m.rejected, field)
}

// failingRecordStore fails every call.
type failingRecordStore struct{}

var errStoreDown = errors.New("store down")

func (failingRecordStore) Save(context.Context, domain.NarrativeRecord) error {
	return errStoreDown
}

func (failingRecordStore) Get(context.Context, string) (*domain.NarrativeRecord, error) {
	return nil, errStoreDown
}

func (failingRecordStore) List(context.Context, int) ([]domain.NarrativeRecord, error) {
	return nil, errStoreDown
}

// stubVocabularyStore serves a fixed vocabulary.
type stubVocabularyStore struct {
	vocab   *domain.Vocabulary
	err     error
	reloads int
}

func (s *stubVocabularyStore) Load() (*domain.Vocabulary, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.vocab == nil {
		return vocabulary.Default()
	}
	return s.vocab, nil
}

func (s *stubVocabularyStore) Reload() { s.reloads++ }

// stubTemplateStore serves the embedded templates.
type stubTemplateStore struct {
	missing string
	reloads int
}

func (s *stubTemplateStore) Load(name string) (string, error) {
	if name == s.missing {
		return "", domain.ErrNotFound
	}
	tmpl, ok := vocabulary.DefaultTemplate(name)
	if !ok {
		return "", domain.ErrNotFound
	}
	return tmpl, nil
}

func (s *stubTemplateStore) Reload() { s.reloads++ }
