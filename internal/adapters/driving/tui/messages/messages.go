// Package messages defines Bubbletea message types for the review TUI.
package messages

import (
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// NarrativeGenerated carries a generated narrative back to the model.
// Compliant records which entry point produced it.
type NarrativeGenerated struct {
	Narrative *domain.GeneratedNarrative
	Compliant bool
	Err       error
}
