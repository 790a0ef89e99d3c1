package services

import (
	"fmt"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/engine"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/logger"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/rewriters"
)

// RewriterSettings supplies the rewriters used for alternative versions and
// their per-rewriter config. SettingsService implements it.
type RewriterSettings interface {
	Rewriters() []string
	RewriterConfig(name string) map[string]any
}

// EngineLoader builds engines from the vocabulary and template stores.
type EngineLoader struct {
	vocabulary driven.VocabularyStore
	templates  driven.TemplateStore
	registry   *rewriters.Registry
	settings   RewriterSettings
}

// NewEngineLoader creates a loader. Settings are read again on every Load,
// so edited rewriter settings apply after a reload. Nil settings mean
// rewriters.DefaultVariantNames with no config.
func NewEngineLoader(vocabulary driven.VocabularyStore, templates driven.TemplateStore, settings RewriterSettings) *EngineLoader {
	return &EngineLoader{
		vocabulary: vocabulary,
		templates:  templates,
		registry:   rewriters.DefaultRegistry(),
		settings:   settings,
	}
}

// Load reads the current vocabulary and templates and builds an engine.
func (l *EngineLoader) Load() (*engine.Engine, error) {
	defer logger.Timed("load engine")()

	vocab, err := l.vocabulary.Load()
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	templates := make(map[domain.NarrativeType]string, len(domain.NarrativeTypes()))
	for _, t := range domain.NarrativeTypes() {
		tmpl, err := l.templates.Load(t.String())
		if err != nil {
			return nil, fmt.Errorf("load template %s: %w", t, err)
		}
		templates[t] = tmpl
	}

	names := rewriters.DefaultVariantNames
	var config rewriters.ConfigFunc
	if l.settings != nil {
		names = l.settings.Rewriters()
		config = l.settings.RewriterConfig
	}

	variants, err := l.registry.BuildAll(names, vocab, config)
	if err != nil {
		return nil, fmt.Errorf("build rewriters: %w", err)
	}
	formal, err := l.registry.BuildChain(rewriters.NameFormal, vocab, config)
	if err != nil {
		return nil, fmt.Errorf("build rewriters: %w", err)
	}

	e, err := engine.New(vocab, templates, engine.WithVariants(variants...), engine.WithFormal(formal))
	if err != nil {
		return nil, err
	}
	logger.Debug("%s", logger.Fields("vocabulary", vocab.Version, "variants", names))
	return e, nil
}

// Reload clears the store caches and builds a fresh engine.
func (l *EngineLoader) Reload() (*engine.Engine, error) {
	l.vocabulary.Reload()
	l.templates.Reload()
	return l.Load()
}
