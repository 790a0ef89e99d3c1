package driven

import (
	"context"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// NarrativeRecordStore persists the audit trail of generated narratives.
type NarrativeRecordStore interface {
	// Save stores a record. Records are immutable once saved.
	Save(ctx context.Context, record domain.NarrativeRecord) error

	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if the record does not exist.
	Get(ctx context.Context, id string) (*domain.NarrativeRecord, error)

	// List returns the most recent records, newest first.
	// A limit of zero or less returns every record.
	List(ctx context.Context, limit int) ([]domain.NarrativeRecord, error)
}
