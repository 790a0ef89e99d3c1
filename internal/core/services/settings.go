package services

import (
	"fmt"
	"strings"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driving"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/rewriters"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

const defaultHistoryLimit = 20

// SettingsService reads and writes narrative defaults in the config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Defaults returns generation options from configuration.
func (s *SettingsService) Defaults() domain.NarrativeOptions {
	d := domain.DefaultNarrativeOptions()
	return domain.NarrativeOptions{
		IncludeTimeBreakdown:           s.getBool(driven.ConfigIncludeTimeBreakdown, d.IncludeTimeBreakdown),
		IncludeWorkTypeDetails:         s.getBool(driven.ConfigIncludeWorkTypeDetails, d.IncludeWorkTypeDetails),
		FormalTone:                     s.getBool(driven.ConfigFormalTone, d.FormalTone),
		IncludeOutcomes:                s.getBool(driven.ConfigIncludeOutcomes, d.IncludeOutcomes),
		GroupByWorkType:                s.getBool(driven.ConfigGroupByWorkType, d.GroupByWorkType),
		NarrativeType:                  s.getNarrativeType(),
		IncludeComplexityJustification: s.getBool(driven.ConfigIncludeComplexity, d.IncludeComplexityJustification),
		IncludeValueDelivered:          s.getBool(driven.ConfigIncludeValueDelivered, d.IncludeValueDelivered),
	}
}

// Save persists generation options. The seed is per request and not saved.
func (s *SettingsService) Save(opts domain.NarrativeOptions) error {
	if opts.NarrativeType != "" && !opts.NarrativeType.IsValid() {
		return fmt.Errorf("%w: narrative type %q", domain.ErrUnsupportedType, opts.NarrativeType)
	}

	values := []struct {
		key   string
		value any
	}{
		{driven.ConfigIncludeTimeBreakdown, opts.IncludeTimeBreakdown},
		{driven.ConfigIncludeWorkTypeDetails, opts.IncludeWorkTypeDetails},
		{driven.ConfigFormalTone, opts.FormalTone},
		{driven.ConfigIncludeOutcomes, opts.IncludeOutcomes},
		{driven.ConfigGroupByWorkType, opts.GroupByWorkType},
		{driven.ConfigNarrativeType, opts.NarrativeType.String()},
		{driven.ConfigIncludeComplexity, opts.IncludeComplexityJustification},
		{driven.ConfigIncludeValueDelivered, opts.IncludeValueDelivered},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Rewriters returns the configured variant rewriters, or the defaults.
func (s *SettingsService) Rewriters() []string {
	if names := s.configStore.GetStringSlice(driven.ConfigRewriters); len(names) > 0 {
		return names
	}
	return append([]string(nil), rewriters.DefaultVariantNames...)
}

// RewriterConfig returns the narrative.rewriter.<name>.* settings keyed by
// the rest of the key, or nil when there are none.
func (s *SettingsService) RewriterConfig(name string) map[string]any {
	prefix := driven.ConfigRewriterPrefix + name + "."
	var cfg map[string]any
	for _, key := range s.configStore.Keys() {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok || rest == "" {
			continue
		}
		if val, ok := s.configStore.Get(key); ok {
			if cfg == nil {
				cfg = make(map[string]any)
			}
			cfg[rest] = val
		}
	}
	return cfg
}

// StorageBackend returns the configured audit store backend.
func (s *SettingsService) StorageBackend() string {
	switch backend := s.configStore.GetString(driven.ConfigStorageBackend); backend {
	case StorageMemory:
		return StorageMemory
	default:
		return StorageSQLite
	}
}

// HistoryLimit returns the default number of history records to show.
func (s *SettingsService) HistoryLimit() int {
	return s.getInt(driven.ConfigHistoryLimit, defaultHistoryLimit)
}

// MCPRateLimit returns the MCP HTTP request rate and burst.
func (s *SettingsService) MCPRateLimit() (perSecond, burst int) {
	return s.getInt(driven.ConfigMCPRequestsPerSecond, 10), s.getInt(driven.ConfigMCPBurst, 20)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getNarrativeType() domain.NarrativeType {
	t, err := domain.ParseNarrativeType(s.configStore.GetString(driven.ConfigNarrativeType))
	if err != nil {
		return ""
	}
	return t
}
