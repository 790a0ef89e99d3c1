package driven

import (
	"time"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// NarrativeMetrics records generation outcomes for monitoring.
type NarrativeMetrics interface {
	// ObserveGenerated records a successful generation.
	// Mode is "standard" or "bar"; compliance is nil for standard narratives.
	ObserveGenerated(mode string, narrativeType domain.NarrativeType, confidence float64,
		compliance *domain.ComplianceCheck, elapsed time.Duration)

	// ObserveRejected records a request rejected as invalid input.
	ObserveRejected(field string)
}
