package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.NarrativeRecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory audit trail.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.NarrativeRecord
	order   []string
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.NarrativeRecord),
	}
}

// Save stores a record. Saving an ID twice is an error.
func (s *RecordStore) Save(_ context.Context, record domain.NarrativeRecord) error {
	if record.ID == "" {
		return fmt.Errorf("%w: record id is empty", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.ID]; exists {
		return fmt.Errorf("record %s already exists", record.ID)
	}
	if record.Options != nil {
		opts := *record.Options
		record.Options = &opts
	}
	s.records[record.ID] = record
	s.order = append(s.order, record.ID)
	return nil
}

// Get retrieves a record by ID.
func (s *RecordStore) Get(_ context.Context, id string) (*domain.NarrativeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns records newest first. Records created at the same instant
// are listed in reverse save order.
func (s *RecordStore) List(_ context.Context, limit int) ([]domain.NarrativeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.NarrativeRecord, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.records[s.order[i]])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len returns the number of stored records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
