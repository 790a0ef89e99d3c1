package engine

import (
	"regexp"
	"strings"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// Compliance issues and the matching recommendations.
const (
	IssueProfessional   = "Narrative should emphasize professional service delivery"
	IssueTimeAllocation = "Narrative should include time allocation details"
	IssueFeeFactors     = "Narrative lacks fee-justification factors"
	IssueUnprofessional = "Narrative contains unprofessional language: "

	RecommendProfessional   = "Describe the work as professional services rendered to the client"
	RecommendTimeAllocation = "State the time spent or the hours devoted to the work"
	RecommendFeeFactors     = "Reference fee-justification factors such as complexity, skill, responsibility or urgency"
	RecommendUnprofessional = "Remove language that understates the work: "

	scorePerIssue = 20
)

// Validator checks narrative text against the professionalism and
// fee-justification rules. It holds no per-call state.
type Validator struct {
	feePhrases     []string
	unprofessional *regexp.Regexp
}

// NewValidator creates a validator from the vocabulary.
func NewValidator(vocab *domain.Vocabulary) *Validator {
	v := &Validator{feePhrases: lowerAll(vocab.FeeJustificationPhrases)}

	words := lowerAll(vocab.UnprofessionalWords)
	if len(words) > 0 {
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = regexp.QuoteMeta(w)
		}
		v.unprofessional = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return v
}

// Validate runs every check. A failed check is reported in the result, never
// as an error.
func (v *Validator) Validate(text string) domain.ComplianceCheck {
	lower := strings.ToLower(text)
	check := domain.ComplianceCheck{
		Issues:          []string{},
		Recommendations: []string{},
	}
	add := func(issue, recommendation string) {
		check.Issues = append(check.Issues, issue)
		check.Recommendations = append(check.Recommendations, recommendation)
	}

	if !strings.Contains(lower, "professional") {
		add(IssueProfessional, RecommendProfessional)
	}
	if !strings.Contains(lower, "time") && !strings.Contains(lower, "hours") {
		add(IssueTimeAllocation, RecommendTimeAllocation)
	}
	if !containsAny(lower, v.feePhrases) {
		add(IssueFeeFactors, RecommendFeeFactors)
	}
	if found := v.unprofessionalWords(lower); len(found) > 0 {
		list := strings.Join(found, ", ")
		add(IssueUnprofessional+list, RecommendUnprofessional+list)
	}

	check.IsCompliant = len(check.Issues) == 0
	check.ComplianceScore = max(0, 100-scorePerIssue*len(check.Issues))
	return check
}

// unprofessionalWords returns the distinct flagged words in order of first use.
func (v *Validator) unprofessionalWords(lower string) []string {
	if v.unprofessional == nil {
		return nil
	}
	var found []string
	seen := make(map[string]bool)
	for _, w := range v.unprofessional.FindAllString(lower, -1) {
		if !seen[w] {
			seen[w] = true
			found = append(found, w)
		}
	}
	return found
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
