package domain

// CategoryLabel names a canonical work category.
type CategoryLabel string

// The closed set of work categories.
const (
	CategoryResearch        CategoryLabel = "Research"
	CategoryDrafting        CategoryLabel = "Drafting"
	CategoryClientMeeting   CategoryLabel = "Client Meeting"
	CategoryCourtAppearance CategoryLabel = "Court Appearance"
	CategoryDocumentReview  CategoryLabel = "Document Review"
	CategoryCorrespondence  CategoryLabel = "Correspondence"
)

// CategoryLabels returns every category label in classification order.
func CategoryLabels() []CategoryLabel {
	return []CategoryLabel{
		CategoryResearch,
		CategoryDrafting,
		CategoryClientMeeting,
		CategoryCourtAppearance,
		CategoryDocumentReview,
		CategoryCorrespondence,
	}
}

// IsValid returns true if the label belongs to the closed category set.
func (l CategoryLabel) IsValid() bool {
	for _, known := range CategoryLabels() {
		if l == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (l CategoryLabel) String() string {
	return string(l)
}

// WorkCategory holds the controlled vocabulary for one category.
type WorkCategory struct {
	// Label is the category this vocabulary belongs to.
	Label CategoryLabel `toml:"label" yaml:"label"`

	// Justification is the fee-justification factor this kind of work supports.
	Justification string `toml:"justification" yaml:"justification"`

	// Verbs are past-tense action phrases used both for classification and narration.
	Verbs []string `toml:"verbs" yaml:"verbs"`

	// LeadIns introduce descriptions that do not start with an action of
	// their own ("attended" + "meeting with client"). Verbs are used when empty.
	LeadIns []string `toml:"lead_ins" yaml:"lead_ins"`

	// Objects are nouns that identify the category during classification.
	Objects []string `toml:"objects" yaml:"objects"`

	// Outcomes are phrases describing what the work achieved.
	Outcomes []string `toml:"outcomes" yaml:"outcomes"`
}

// Group is a set of entries sharing a key, in first-seen order.
type Group struct {
	// Key is the category label or the YYYY-MM-DD date.
	Key string

	// Category is the category of the group in by-category mode.
	// In by-date mode it is empty.
	Category CategoryLabel

	// Entries are the members of the group in input order.
	Entries []TimeEntry

	// TotalMinutes is the summed duration of Entries.
	TotalMinutes int
}

// GroupMode selects how entries are partitioned before narration.
type GroupMode string

// Available grouping modes.
const (
	GroupByCategory GroupMode = "by-category"
	GroupByDate     GroupMode = "by-date"
)
