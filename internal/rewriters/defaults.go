package rewriters

import (
	"sort"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/rewriters/concise"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/rewriters/substitute"
)

// Built-in rewriter names.
const (
	NameConcise  = "concise"
	NameDetailed = "detailed"
	NameFormal   = "formal"
)

// DefaultVariantNames are the rewriters used to build alternative versions.
var DefaultVariantNames = []string{NameConcise, NameDetailed}

// RegisterDefaults registers all built-in rewriters with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(NameConcise, buildConcise)
	r.Register(NameDetailed, buildDetailed)
	r.Register(NameFormal, buildFormal)
}

// DefaultRegistry returns a registry with the built-in rewriters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// DefaultVariants builds the default alternative-version rewriters.
func DefaultVariants(vocab *domain.Vocabulary) ([]driven.Rewriter, error) {
	return DefaultRegistry().BuildAll(DefaultVariantNames, vocab, nil)
}

// buildConcise creates the concise rewriter.
// Supported config keys:
//   - connectives ([]string): overrides the vocabulary's section connectives
func buildConcise(vocab *domain.Vocabulary, cfg map[string]any) (driven.Rewriter, error) {
	connectives := vocab.SectionConnectives
	if extra := getStringsFromConfig(cfg, "connectives"); len(extra) > 0 {
		connectives = extra
	}
	return concise.New(concise.WithConnectives(connectives...)), nil
}

// buildDetailed creates the detailed rewriter.
// Supported config keys:
//   - substitutions: extra {from, to} pairs, applied before the vocabulary's
func buildDetailed(vocab *domain.Vocabulary, cfg map[string]any) (driven.Rewriter, error) {
	subs := append(getSubstitutionsFromConfig(cfg, "substitutions"), vocab.DetailedSubstitutions...)
	return substitute.New(NameDetailed, subs), nil
}

// buildFormal creates the formal-tone rewriter.
// Supported config keys:
//   - substitutions: as for detailed
func buildFormal(vocab *domain.Vocabulary, cfg map[string]any) (driven.Rewriter, error) {
	subs := append(getSubstitutionsFromConfig(cfg, "substitutions"), vocab.FormalSubstitutions...)
	return substitute.New(NameFormal, subs), nil
}

// getStringsFromConfig extracts a string list from a generic config map.
// Handles []string and the []any that TOML/JSON parsing produces.
func getStringsFromConfig(cfg map[string]any, key string) []string {
	val, ok := cfg[key]
	if !ok {
		return nil
	}

	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// getSubstitutionsFromConfig extracts from -> to pairs. The TOML form is an
// array of tables, substitutions = [{ from = "...", to = "..." }], kept in
// order. A from -> to map is also accepted and applied in sorted key order.
func getSubstitutionsFromConfig(cfg map[string]any, key string) []domain.Substitution {
	raw, ok := cfg[key]
	if !ok {
		return nil
	}

	switch v := raw.(type) {
	case []domain.Substitution:
		return v
	case []any:
		out := make([]domain.Substitution, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			from, _ := m["from"].(string)
			to, _ := m["to"].(string)
			if from != "" {
				out = append(out, domain.Substitution{From: from, To: to})
			}
		}
		return out
	case map[string]string:
		return sortedSubstitutions(v)
	case map[string]any:
		pairs := make(map[string]string, len(v))
		for from, to := range v {
			if s, ok := to.(string); ok {
				pairs[from] = s
			}
		}
		return sortedSubstitutions(pairs)
	default:
		return nil
	}
}

func sortedSubstitutions(pairs map[string]string) []domain.Substitution {
	froms := make([]string, 0, len(pairs))
	for from := range pairs {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	out := make([]domain.Substitution, 0, len(pairs))
	for _, from := range froms {
		out = append(out, domain.Substitution{From: from, To: pairs[from]})
	}
	return out
}
