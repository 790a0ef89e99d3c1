package rewriters

import (
	"fmt"
	"sort"
	"strings"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

// BuilderFunc creates a Rewriter from the vocabulary and generic config.
// Config is a map of rewriter-specific settings parsed from user config.
type BuilderFunc func(vocab *domain.Vocabulary, cfg map[string]any) (driven.Rewriter, error)

// ConfigFunc returns the config for a named rewriter, or nil for none.
type ConfigFunc func(name string) map[string]any

// Registry maps rewriter names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new rewriter registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a rewriter builder to the registry.
// Name should match the rewriter's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a rewriter by name.
// Returns domain.ErrUnsupportedType if the name is not registered.
func (r *Registry) Build(name string, vocab *domain.Vocabulary, cfg map[string]any) (driven.Rewriter, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: rewriter %q", domain.ErrUnsupportedType, name)
	}
	return builder(vocab, cfg)
}

// BuildChain builds a rewriter from a name such as "formal+concise".
// Names joined with "+" are run in order through a Pipeline; each part gets
// its own config from config, which may be nil.
func (r *Registry) BuildChain(name string, vocab *domain.Vocabulary, config ConfigFunc) (driven.Rewriter, error) {
	p := NewPipeline()
	for _, part := range strings.Split(name, "+") {
		part = strings.TrimSpace(part)
		var cfg map[string]any
		if config != nil {
			cfg = config(part)
		}
		rw, err := r.Build(part, vocab, cfg)
		if err != nil {
			return nil, err
		}
		p.Add(rw)
	}
	if p.Len() == 1 {
		return p.rewriters[0], nil
	}
	return p, nil
}

// BuildAll builds each named rewriter or chain, in order.
func (r *Registry) BuildAll(names []string, vocab *domain.Vocabulary, config ConfigFunc) ([]driven.Rewriter, error) {
	out := make([]driven.Rewriter, 0, len(names))
	for _, name := range names {
		rw, err := r.BuildChain(name, vocab, config)
		if err != nil {
			return nil, err
		}
		out = append(out, rw)
	}
	return out, nil
}

// Has returns true if a rewriter with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered rewriter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
