package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

// Template placeholder names.
const (
	KeyMatterTitle           = "matter_title"
	KeyClientName            = "client_name"
	KeyOpposingParty         = "opposing_party"
	KeyTotalHours            = "total_hours"
	KeyWorkBreakdown         = "work_breakdown"
	KeyComplexityDescription = "complexity_description"
	KeyCategoryCount         = "category_count"
	KeyFeeJustification      = "fee_justification"
	KeyScopeOfWork           = "scope_of_work"
	KeyValueDelivered        = "value_delivered"
	KeyEntryCount            = "entry_count"
	KeyDateRange             = "date_range"
)

const (
	defaultOpposingParty  = "the opposing party"
	defaultDateRange      = "covered by this account"
	responsibilityAssumed = "the responsibility assumed"
)

// opposingSeparator splits a matter title such as "Smith v Jones".
var opposingSeparator = regexp.MustCompile(`(?i)\s(?:vs?\.?|against)\s`)

// TemplateEngine renders Bar-compliant narratives from per-type templates.
type TemplateEngine struct {
	vocab      *domain.Vocabulary
	classifier *Classifier
	templates  map[domain.NarrativeType]string
}

// NewTemplateEngine creates a template engine. Every narrative type must
// have a non-empty template.
func NewTemplateEngine(vocab *domain.Vocabulary, classifier *Classifier, templates map[domain.NarrativeType]string) (*TemplateEngine, error) {
	copied := make(map[domain.NarrativeType]string, len(templates))
	for _, t := range domain.NarrativeTypes() {
		tmpl := strings.TrimSpace(templates[t])
		if tmpl == "" {
			return nil, fmt.Errorf("%w: template for %s is missing", domain.ErrInvalidVocabulary, t)
		}
		copied[t] = tmpl
	}
	return &TemplateEngine{vocab: vocab, classifier: classifier, templates: copied}, nil
}

// Context builds the placeholder values for a set of entries.
func (t *TemplateEngine) Context(entries []domain.TimeEntry, matter *domain.Matter, nt domain.NarrativeType) map[string]string {
	groups := GroupEntries(entries, domain.GroupByCategory, t.classifier)
	total := domain.TotalMinutes(entries)

	var title, client string
	if matter != nil {
		title, client = strings.TrimSpace(matter.Title), strings.TrimSpace(matter.ClientName)
	}
	if title == "" {
		title = "this matter"
	}
	if client == "" {
		client = "the client"
	}

	breakdown := make([]string, 0, len(groups))
	labels := make([]string, 0, len(groups))
	justifications := make([]string, 0, len(groups)+1)
	seen := make(map[string]bool)
	for _, g := range groups {
		breakdown = append(breakdown, fmt.Sprintf("- %s: %s", g.Category, hoursPhrase(g.TotalMinutes)))
		labels = append(labels, strings.ToLower(string(g.Category)))
		if cat, ok := t.vocab.Category(g.Category); ok && cat.Justification != "" && !seen[cat.Justification] {
			seen[cat.Justification] = true
			justifications = append(justifications, cat.Justification)
		}
	}
	if !containsFold(justifications, "responsibility") {
		justifications = append(justifications, responsibilityAssumed)
	}

	return map[string]string{
		KeyMatterTitle:           title,
		KeyClientName:            client,
		KeyOpposingParty:         OpposingParty(title),
		KeyTotalHours:            FormatHours(total),
		KeyWorkBreakdown:         strings.Join(breakdown, "\n"),
		KeyComplexityDescription: ComplexityDescription(total, len(groups)),
		KeyCategoryCount:         strconv.Itoa(len(groups)),
		KeyFeeJustification:      joinWithAnd(justifications),
		KeyScopeOfWork:           joinWithAnd(labels),
		KeyValueDelivered:        t.vocab.ValueDelivered[string(nt)],
		KeyEntryCount:            strconv.Itoa(len(entries)),
		KeyDateRange:             DateRange(entries),
	}
}

// Render fills the template for nt and appends the complexity and value
// sentences when requested.
func (t *TemplateEngine) Render(nt domain.NarrativeType, entries []domain.TimeEntry, matter *domain.Matter, opts domain.NarrativeOptions) (string, error) {
	tmpl, ok := t.templates[nt]
	if !ok {
		return "", fmt.Errorf("%w: narrative type %q", domain.ErrUnsupportedType, nt)
	}

	ctx := t.Context(entries, matter, nt)
	text := strings.TrimSpace(Fill(tmpl, ctx))

	if opts.IncludeComplexityJustification && t.vocab.ComplexitySentence != "" {
		text += " " + Fill(t.vocab.ComplexitySentence, ctx)
	}
	if opts.IncludeValueDelivered && t.vocab.ValueSentence != "" {
		text += " " + Fill(t.vocab.ValueSentence, ctx)
	}
	return FormatNarrative(text), nil
}

// Fill replaces {{name}} placeholders. Unknown placeholders are left as they are.
func Fill(tmpl string, ctx map[string]string) string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "{{"+k+"}}", ctx[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// OpposingParty returns the party named after "v", "vs" or "against" in a
// matter title, or "the opposing party".
func OpposingParty(title string) string {
	for _, loc := range opposingSeparator.FindAllStringIndex(title, -1) {
		if party := strings.TrimSpace(title[loc[1]:]); party != "" {
			return party
		}
	}
	return defaultOpposingParty
}

// ComplexityDescription rates the matter from total time and breadth of work.
func ComplexityDescription(totalMinutes, categories int) string {
	hours := float64(totalMinutes) / 60

	level := "straightforward"
	switch {
	case hours > 40 || categories >= 4:
		level = "highly complex"
	case hours > 15 || categories >= 3:
		level = "moderately complex"
	}

	areas := "distinct areas"
	if categories == 1 {
		areas = "distinct area"
	}
	return fmt.Sprintf("a matter of %s nature requiring %d %s of work", level, categories, areas)
}

// DateRange renders the earliest and latest entry dates.
func DateRange(entries []domain.TimeEntry) string {
	var first, last time.Time
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		if first.IsZero() || e.Date.Before(first) {
			first = e.Date
		}
		if last.IsZero() || e.Date.After(last) {
			last = e.Date
		}
	}

	switch {
	case first.IsZero():
		return defaultDateRange
	case first.Format(dateKeyLayout) == last.Format(dateKeyLayout):
		return first.Format(sectionDateLayout)
	default:
		return first.Format(sectionDateLayout) + " to " + last.Format(sectionDateLayout)
	}
}

func hoursPhrase(minutes int) string {
	h := FormatHours(minutes)
	if h == "1" {
		return "1 hour"
	}
	return h + " hours"
}

func containsFold(items []string, substr string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), substr) {
			return true
		}
	}
	return false
}
