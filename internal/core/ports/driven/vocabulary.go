package driven

import "github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"

// VocabularyStore provides the wording tables the engine is built from.
// Implementations may read user files, embedded defaults, or a remote service.
type VocabularyStore interface {
	// Load returns a validated vocabulary.
	// Returns an error wrapping domain.ErrInvalidVocabulary if the data is malformed.
	Load() (*domain.Vocabulary, error)

	// Reload clears any cached vocabulary, forcing a fresh load on next access.
	Reload()
}
