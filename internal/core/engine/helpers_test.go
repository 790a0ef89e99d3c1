package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/vocabulary"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(vocabulary.MustDefault(), vocabulary.DefaultTemplates())
	require.NoError(t, err)
	return e
}

func smithEntries() []domain.TimeEntry {
	return []domain.TimeEntry{
		{ID: "1", Date: day(2), DurationMinutes: 90, Description: "Researched case law on breach of contract", Billable: true},
		{ID: "2", Date: day(3), DurationMinutes: 60, Description: "Drafted heads of argument", Billable: true},
	}
}

func smithMatter() *domain.Matter {
	return &domain.Matter{Title: "Smith v Jones", ClientName: "Smith"}
}

func day(d int) time.Time {
	return time.Date(2026, time.January, d, 9, 0, 0, 0, time.UTC)
}
