// Package tui provides the interactive review screen for generated narratives.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Narrative generates and validates narratives.
	Narrative driving.NarrativeService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Narrative == nil {
		return ErrMissingNarrativeService
	}
	return nil
}
