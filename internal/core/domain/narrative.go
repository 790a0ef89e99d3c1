package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// NarrativeType selects the prose template and keyword set for Bar-compliant narratives.
type NarrativeType string

// Available narrative types.
const (
	NarrativeLitigation NarrativeType = "litigation"
	NarrativeAdvisory   NarrativeType = "advisory"
	NarrativeGeneral    NarrativeType = "general"
)

// NarrativeTypes returns all narrative types.
func NarrativeTypes() []NarrativeType {
	return []NarrativeType{NarrativeLitigation, NarrativeAdvisory, NarrativeGeneral}
}

// ParseNarrativeType converts a string to a NarrativeType.
// An empty string parses to the empty type, meaning "detect automatically".
func ParseNarrativeType(s string) (NarrativeType, error) {
	t := NarrativeType(s)
	if s == "" || t.IsValid() {
		return t, nil
	}
	return "", fmt.Errorf("%w: narrative type %q", ErrUnsupportedType, s)
}

// IsValid returns true if the narrative type is recognised.
func (t NarrativeType) IsValid() bool {
	switch t {
	case NarrativeLitigation, NarrativeAdvisory, NarrativeGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t NarrativeType) String() string {
	return string(t)
}

// Description returns a human-readable description of the type.
func (t NarrativeType) Description() string {
	switch t {
	case NarrativeLitigation:
		return "Litigation (court proceedings)"
	case NarrativeAdvisory:
		return "Advisory (opinions and transactions)"
	case NarrativeGeneral:
		return "General legal services"
	default:
		return unknownDescription
	}
}

// NarrativeOptions are the recognised generation options.
type NarrativeOptions struct {
	IncludeTimeBreakdown   bool `json:"include_time_breakdown"`
	IncludeWorkTypeDetails bool `json:"include_work_type_details"`
	FormalTone             bool `json:"formal_tone"`
	IncludeOutcomes        bool `json:"include_outcomes"`
	GroupByWorkType        bool `json:"group_by_work_type"`

	// NarrativeType overrides type detection in Bar-compliant mode.
	// Empty means detect from the entries and matter.
	NarrativeType NarrativeType `json:"narrative_type,omitempty"`

	IncludeComplexityJustification bool `json:"include_complexity_justification"`
	IncludeValueDelivered          bool `json:"include_value_delivered"`

	// Seed drives phrase selection. Zero asks the service to draw a fresh seed,
	// which is then reported in the result so the narrative can be reproduced.
	Seed uint64 `json:"seed,omitempty"`
}

// DefaultNarrativeOptions returns options with every feature enabled.
func DefaultNarrativeOptions() NarrativeOptions {
	return NarrativeOptions{
		IncludeTimeBreakdown:           true,
		IncludeWorkTypeDetails:         false,
		FormalTone:                     true,
		IncludeOutcomes:                true,
		GroupByWorkType:                true,
		IncludeComplexityJustification: true,
		IncludeValueDelivered:          true,
	}
}

// NarrativeRequest is the input to narrative generation.
type NarrativeRequest struct {
	Entries []TimeEntry      `json:"entries" yaml:"entries"`
	Matter  *Matter          `json:"matter" yaml:"matter"`
	Options NarrativeOptions `json:"options" yaml:"-"`
}

// ComplianceCheck is the result of validating a narrative against the
// fee-justification and professionalism rules. A failed check is data, not an error.
type ComplianceCheck struct {
	IsCompliant bool `json:"is_compliant"`

	// Issues and Recommendations are parallel: Recommendations[i] addresses Issues[i].
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`

	// ComplianceScore is 100 minus 20 per issue, floored at 0.
	ComplianceScore int `json:"compliance_score"`
}

// GeneratedNarrative is the engine's output.
type GeneratedNarrative struct {
	Narrative           string   `json:"narrative"`
	WordCount           int      `json:"word_count"`
	Confidence          float64  `json:"confidence"`
	Suggestions         []string `json:"suggestions"`
	AlternativeVersions []string `json:"alternative_versions"`

	// Compliance and NarrativeType are set by the Bar-compliant entry point.
	Compliance    *ComplianceCheck `json:"compliance,omitempty"`
	NarrativeType NarrativeType    `json:"narrative_type,omitempty"`

	// Seed and VocabularyVersion identify how the narrative can be reproduced.
	Seed              uint64    `json:"seed"`
	VocabularyVersion string    `json:"vocabulary_version"`
	GeneratedAt       time.Time `json:"generated_at"`

	// RecordID is the audit record ID when the narrative was recorded.
	RecordID string `json:"record_id,omitempty"`
}

// NarrativeRecord is the audit trail entry for one generated narrative.
type NarrativeRecord struct {
	ID            string
	MatterTitle   string
	ClientName    string
	Seed          uint64
	NarrativeType NarrativeType

	// BarMode is true when the narrative came from the Bar-compliant entry point.
	BarMode bool

	// IsCompliant and ComplianceScore are only meaningful when BarMode is true.
	IsCompliant     bool
	ComplianceScore int

	Narrative         string
	WordCount         int
	Confidence        float64
	EntryCount        int
	TotalMinutes      int
	VocabularyVersion string
	CreatedAt         time.Time

	// Options are the options the narrative was generated with, seed included.
	// Nil for records saved before options were kept.
	Options *NarrativeOptions
}

// ReplayResult compares a recorded narrative with a regeneration from its seed.
type ReplayResult struct {
	Record      NarrativeRecord
	Regenerated *GeneratedNarrative

	// Identical is true when the regenerated text is byte-identical to the record.
	Identical bool
}
