package engine

import (
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

const (
	dateKeyLayout = "2006-01-02"
	undatedKey    = "undated"
)

// GroupEntries partitions entries by category or by date. Groups appear in
// the order their key is first seen in the input, and entries keep their
// input order within a group.
func GroupEntries(entries []domain.TimeEntry, mode domain.GroupMode, classifier *Classifier) []domain.Group {
	var groups []domain.Group
	index := make(map[string]int)

	for _, entry := range entries {
		var key string
		var category domain.CategoryLabel

		if mode == domain.GroupByDate {
			key = dateKey(entry)
		} else {
			category = classifier.Classify(entry.Description)
			key = string(category)
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.Group{Key: key, Category: category})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
		groups[i].TotalMinutes += entry.DurationMinutes
	}

	return groups
}

func dateKey(entry domain.TimeEntry) string {
	if entry.Date.IsZero() {
		return undatedKey
	}
	return entry.Date.Format(dateKeyLayout)
}
