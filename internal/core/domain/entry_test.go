package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"", time.Time{}},
		{"2026-01-02", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2026-01-02T09:30:00Z", time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)},
		{"2026-01-02 09:30", time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEntryDate(tt.in)

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParseEntryDate_Invalid(t *testing.T) {
	_, err := ParseEntryDate("2nd of January")

	assert.ErrorIs(t, err, ErrInvalidInput)
	var iie *InvalidInputError
	require.ErrorAs(t, err, &iie)
	assert.Equal(t, "date", iie.Field)
}
