package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/vocabulary"
)

func TestDetector_Detect(t *testing.T) {
	d := NewDetector(vocabulary.MustDefault())

	tests := []struct {
		name    string
		entries []string
		matter  *domain.Matter
		want    domain.NarrativeType
	}{
		{"litigation", []string{"Prepared for court hearing", "Appeared in motion court"}, &domain.Matter{}, domain.NarrativeLitigation},
		{"advisory", []string{"Drafted opinion on regulatory compliance", "Advice to board"}, &domain.Matter{}, domain.NarrativeAdvisory},
		{"general", []string{"Filed documents", "Updated records"}, &domain.Matter{}, domain.NarrativeGeneral},
		{"matter title counts", []string{"Prepared notes"}, &domain.Matter{Title: "Appeal against judgment"}, domain.NarrativeLitigation},
		{"nil matter", []string{"Opinion on structuring"}, nil, domain.NarrativeAdvisory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]domain.TimeEntry, len(tt.entries))
			for i, desc := range tt.entries {
				entries[i] = domain.TimeEntry{Description: desc, DurationMinutes: 10}
			}
			got, _ := d.Detect(entries, tt.matter)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetector_TieGoesToLitigation(t *testing.T) {
	d := NewDetector(vocabulary.MustDefault())
	got, scores := d.Detect([]domain.TimeEntry{{Description: "court advice"}}, nil)
	assert.Equal(t, 1, scores.Litigation)
	assert.Equal(t, 1, scores.Advisory)
	assert.Equal(t, domain.NarrativeLitigation, got)
}
