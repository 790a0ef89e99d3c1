package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/vocabulary"
)

var _ driven.VocabularyStore = (*VocabularyStore)(nil)

// Vocabulary override file names, in lookup order.
var vocabularyFiles = []string{"vocabulary.toml", "vocabulary.yaml", "vocabulary.yml"}

// VocabularyStore loads the wording tables from the config directory.
// Without an override file the embedded default is used. A malformed override
// is an error rather than a silent fallback, so a typo never changes wording
// unnoticed.
type VocabularyStore struct {
	mu     sync.Mutex
	dir    string
	cached *domain.Vocabulary
	source string
}

// NewVocabularyStore creates a store reading overrides from dir.
// If dir is empty, DefaultDir is used.
func NewVocabularyStore(dir string) (*VocabularyStore, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &VocabularyStore{dir: dir}, nil
}

// Load returns the vocabulary, reading it from disk on first use.
func (s *VocabularyStore) Load() (*domain.Vocabulary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	v, source, err := s.read()
	if err != nil {
		return nil, err
	}
	s.cached = v
	s.source = source
	return v, nil
}

// Reload drops the cached vocabulary.
func (s *VocabularyStore) Reload() {
	s.mu.Lock()
	s.cached = nil
	s.source = ""
	s.mu.Unlock()
}

// Source returns the file the cached vocabulary came from, "embedded" for the
// shipped default, or "" before the first Load.
func (s *VocabularyStore) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Dir returns the directory searched for override files.
func (s *VocabularyStore) Dir() string {
	return s.dir
}

// Path returns the TOML override path, whether or not it exists.
func (s *VocabularyStore) Path() string {
	return filepath.Join(s.dir, vocabularyFiles[0])
}

// IsVocabularyFile reports whether a file name is a vocabulary override.
func IsVocabularyFile(name string) bool {
	for _, f := range vocabularyFiles {
		if filepath.Base(name) == f {
			return true
		}
	}
	return false
}

func (s *VocabularyStore) read() (*domain.Vocabulary, string, error) {
	for _, name := range vocabularyFiles {
		path := filepath.Join(s.dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}

		var v *domain.Vocabulary
		if filepath.Ext(name) == ".toml" {
			v, err = vocabulary.ParseTOML(data)
		} else {
			v, err = vocabulary.ParseYAML(data)
		}
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", path, err)
		}
		return v, path, nil
	}

	v, err := vocabulary.Default()
	if err != nil {
		return nil, "", err
	}
	return v, "embedded", nil
}
