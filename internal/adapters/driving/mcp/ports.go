package mcp

import (
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the MCP server.
type Ports struct {
	// Narrative generates, validates and classifies narratives.
	Narrative driving.NarrativeService

	// Settings supplies the user's default options. Optional: without it
	// domain.DefaultNarrativeOptions applies.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Narrative == nil {
		return ErrMissingNarrativeService
	}
	return nil
}

// defaults returns the options tool calls start from.
func (p *Ports) defaults() domain.NarrativeOptions {
	if p.Settings == nil {
		return domain.DefaultNarrativeOptions()
	}
	return p.Settings.Defaults()
}
