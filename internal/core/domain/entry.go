package domain

import (
	"strconv"
	"time"
)

// TimeEntry is a single billable time record.
// The engine treats entries as immutable input and never modifies them.
type TimeEntry struct {
	// ID is the identifier assigned by the time-tracking system.
	ID string `json:"id" yaml:"id"`

	// Date is the day the work was performed.
	Date time.Time `json:"date" yaml:"date"`

	// DurationMinutes is the time spent, in whole minutes. Must be positive.
	DurationMinutes int `json:"duration_minutes" yaml:"duration_minutes"`

	// Description is the free-text description captured by the fee earner.
	Description string `json:"description" yaml:"description"`

	// Amount is the monetary value of the entry.
	Amount float64 `json:"amount" yaml:"amount"`

	// Billable indicates whether the entry is billable.
	Billable bool `json:"billable" yaml:"billable"`
}

// Matter is read-only context about the legal matter being billed.
type Matter struct {
	// Title is the matter title, e.g. "Smith v Jones".
	Title string `json:"title" yaml:"title"`

	// ClientName is the client the matter is billed to.
	ClientName string `json:"client_name" yaml:"client_name"`

	// MatterType is an optional practice-area label.
	MatterType string `json:"matter_type,omitempty" yaml:"matter_type,omitempty"`

	// Description is an optional longer description of the matter.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// RiskLevel is an optional risk rating.
	RiskLevel string `json:"risk_level,omitempty" yaml:"risk_level,omitempty"`
}

// TotalMinutes sums the durations of the given entries.
func TotalMinutes(entries []TimeEntry) int {
	total := 0
	for i := range entries {
		total += entries[i].DurationMinutes
	}
	return total
}

// entryDateLayouts are the accepted textual forms of TimeEntry.Date.
var entryDateLayouts = []string{time.DateOnly, time.RFC3339, time.RFC3339Nano, "2006-01-02 15:04"}

// ParseEntryDate parses a date as written in request files and tool calls.
// An empty string is the zero time, which groups as "undated".
func ParseEntryDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewInvalidInputError("date", "unrecognised date "+strconv.Quote(s))
}
