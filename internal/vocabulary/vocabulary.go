// Package vocabulary embeds the default wording tables and narrative templates.
//
// The data is versioned configuration, not code: the file adapter lets users
// override it from their config directory, and this package supplies the
// shipped defaults both to that adapter and to tests.
package vocabulary

import (
	"embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

//go:embed default.toml
var defaultTOML []byte

//go:embed templates/*.txt
var templateFS embed.FS

// DefaultTOML returns the raw default vocabulary file.
func DefaultTOML() []byte {
	out := make([]byte, len(defaultTOML))
	copy(out, defaultTOML)
	return out
}

// ParseTOML decodes and validates a TOML vocabulary.
func ParseTOML(data []byte) (*domain.Vocabulary, error) {
	var v domain.Vocabulary
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: decoding toml: %w", domain.ErrInvalidVocabulary, err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// ParseYAML decodes and validates a YAML vocabulary. Field names are the
// same as in the TOML form.
func ParseYAML(data []byte) (*domain.Vocabulary, error) {
	var v domain.Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: decoding yaml: %w", domain.ErrInvalidVocabulary, err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Encode renders a vocabulary as "toml" or "yaml".
func Encode(v *domain.Vocabulary, format string) ([]byte, error) {
	switch format {
	case "toml":
		return toml.Marshal(v)
	case "yaml", "yml":
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: vocabulary format %q", domain.ErrUnsupportedType, format)
	}
}

// Default returns a freshly decoded copy of the shipped vocabulary.
func Default() (*domain.Vocabulary, error) {
	return ParseTOML(defaultTOML)
}

// MustDefault is like Default but panics if the shipped data is invalid.
// Intended for tests and program initialisation.
func MustDefault() *domain.Vocabulary {
	v, err := Default()
	if err != nil {
		panic(err)
	}
	return v
}

// DefaultTemplate returns the shipped template for a narrative type name.
func DefaultTemplate(name string) (string, bool) {
	data, err := templateFS.ReadFile("templates/" + name + ".txt")
	if err != nil {
		return "", false
	}
	return string(data), true
}

// DefaultTemplates returns the shipped templates keyed by narrative type.
func DefaultTemplates() map[domain.NarrativeType]string {
	out := make(map[domain.NarrativeType]string, len(domain.NarrativeTypes()))
	for _, t := range domain.NarrativeTypes() {
		if tmpl, ok := DefaultTemplate(string(t)); ok {
			out[t] = tmpl
		}
	}
	return out
}
