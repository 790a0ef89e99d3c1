package driving

import "github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"

// SettingsService manages the user's narrative defaults.
type SettingsService interface {
	// Defaults returns generation options from configuration, falling back to
	// domain.DefaultNarrativeOptions for unset keys.
	Defaults() domain.NarrativeOptions

	// Save persists generation options as the new defaults.
	Save(opts domain.NarrativeOptions) error

	// Rewriters returns the rewriter names used for alternative versions.
	Rewriters() []string

	// StorageBackend returns "sqlite" or "memory".
	StorageBackend() string

	// HistoryLimit returns the default number of records shown by history.
	HistoryLimit() int
}
