package engine

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

const sectionDateLayout = "2 January 2006"

// timePrefix matches recorded-time prefixes such as "2h", "1.5 hrs -", "30 min:".
var timePrefix = regexp.MustCompile(
	`(?i)^\d+(?:[.,]\d+)?\s*(?:hours|hour|hrs|hr|h|minutes|minute|mins|min|m)\b\s*[-:,]?\s*`)

// Narrator turns one group of entries into one sentence.
type Narrator struct {
	vocab      *domain.Vocabulary
	classifier *Classifier
	prefixes   []string
	actions    []string
}

// NewNarrator creates a narrator for the vocabulary.
func NewNarrator(vocab *domain.Vocabulary, classifier *Classifier) *Narrator {
	n := &Narrator{
		vocab:      vocab,
		classifier: classifier,
		prefixes:   lowerAll(vocab.BoilerplatePrefixes),
	}
	seen := make(map[string]bool)
	for _, cat := range vocab.Categories {
		for _, verb := range lowerAll(cat.Verbs) {
			if !seen[verb] {
				seen[verb] = true
				n.actions = append(n.actions, verb)
			}
		}
	}
	// Longest first so "consulted with" wins over "consulted".
	sort.SliceStable(n.actions, func(i, j int) bool {
		return len(n.actions[i]) > len(n.actions[j])
	})
	return n
}

// CleanDescription strips boilerplate and time prefixes and trailing
// punctuation from an entry description.
func (n *Narrator) CleanDescription(description string) string {
	original := strings.TrimSpace(description)
	s := original

	for changed := true; changed; {
		changed = false
		if loc := timePrefix.FindStringIndex(s); loc != nil && loc[1] > 0 {
			s = strings.TrimSpace(s[loc[1]:])
			changed = true
		}
		for _, prefix := range n.prefixes {
			if hasPrefixFold(s, prefix) {
				s = strings.TrimSpace(s[len(prefix):])
				changed = true
				break
			}
		}
	}

	s = strings.TrimRight(s, " .,;:!?-")
	if s == "" {
		return strings.TrimRight(original, " .,;:!?-")
	}
	return s
}

// actionKind tells how a cleaned description starts.
type actionKind int

const (
	noAction    actionKind = iota // "Meeting with client"
	vocabAction                   // a vocabulary verb that can be swapped
	ownAction                     // another action, kept as written
)

// conjunctions joining a leading action to a second one ("received and reviewed").
var conjunctions = map[string]bool{"and": true, "or": true, "&": true, "and/or": true}

// splitAction removes a leading vocabulary verb from a cleaned description.
// Descriptions that open with any other action are returned unchanged.
func (n *Narrator) splitAction(s string) (string, actionKind) {
	for _, action := range n.actions {
		if hasPrefixFold(s, action+" ") {
			rest := strings.TrimSpace(s[len(action):])
			if rest != "" && !startsWithConjunction(rest) {
				return rest, vocabAction
			}
			return s, ownAction
		}
	}

	words := strings.Fields(s)
	if len(words) < 2 || !isPastTense(strings.TrimRight(words[0], ",;")) {
		return s, noAction
	}
	return s, ownAction
}

func startsWithConjunction(s string) bool {
	words := strings.Fields(s)
	return len(words) > 0 && conjunctions[strings.ToLower(words[0])]
}

func isPastTense(word string) bool {
	if len(word) < 5 || !strings.HasSuffix(strings.ToLower(word), "ed") {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Section renders one group as a sentence:
//
//	<Verb> <descriptions> <matter reference>[ over <duration>][, <connector> <outcome>].
func (n *Narrator) Section(group domain.Group, matter *domain.Matter, opts domain.NarrativeOptions, sel driven.PhraseSelector) string {
	category := group.Category
	if category == "" && len(group.Entries) > 0 {
		category = n.classifier.Classify(group.Entries[0].Description)
	}
	vocab, ok := n.vocab.Category(category)
	if !ok {
		vocab, _ = n.vocab.Category(n.vocab.DefaultCategory)
	}

	asWritten := make([]string, 0, len(group.Entries))
	withoutVerb := make([]string, 0, len(group.Entries))
	allVocab, allActions := true, true
	for _, entry := range group.Entries {
		cleaned := n.CleanDescription(entry.Description)
		rest, kind := n.splitAction(cleaned)
		allVocab = allVocab && kind == vocabAction
		allActions = allActions && kind != noAction
		asWritten = append(asWritten, lowerFirst(cleaned))
		withoutVerb = append(withoutVerb, lowerFirst(rest))
	}

	// Vocabulary verbs are swapped for a picked one. Other actions stay as
	// written, and descriptions without an action get a lead-in.
	var verb string
	descriptions := asWritten
	switch {
	case allVocab:
		verb = sel.Pick(vocab.Verbs)
		descriptions = withoutVerb
	case !allActions:
		verbs := vocab.LeadIns
		if len(verbs) == 0 {
			verbs = vocab.Verbs
		}
		verb = sel.Pick(verbs)
	}

	var b strings.Builder
	b.WriteString(verb)
	if d := joinWithAnd(descriptions); d != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(d)
	}
	b.WriteString(" ")
	b.WriteString(n.matterReference(matter, sel))

	if opts.IncludeTimeBreakdown {
		b.WriteString(" over ")
		b.WriteString(FormatDuration(group.TotalMinutes))
	}
	if opts.IncludeOutcomes && sel.Float64() < n.vocab.OutcomeProbability {
		if outcome := sel.Pick(vocab.Outcomes); outcome != "" {
			b.WriteString(", ")
			b.WriteString(sel.Pick(n.vocab.OutcomeConnectives))
			b.WriteString(" ")
			b.WriteString(outcome)
		}
	}
	b.WriteString(".")

	sentence := capitalizeFirst(b.String())
	if group.Category == "" && len(group.Entries) > 0 && !group.Entries[0].Date.IsZero() {
		sentence = "On " + group.Entries[0].Date.Format(sectionDateLayout) + ", " + lowerFirst(sentence)
	}
	if opts.IncludeWorkTypeDetails {
		sentence = string(category) + " work: " + lowerFirst(sentence)
	}
	return sentence
}

func (n *Narrator) matterReference(matter *domain.Matter, sel driven.PhraseSelector) string {
	conn := sel.Pick(n.vocab.MatterConnectives)

	var title, client string
	if matter != nil {
		title = strings.TrimSpace(matter.Title)
		client = strings.TrimSpace(matter.ClientName)
	}

	switch {
	case title != "" && client != "":
		return conn + " the " + title + " matter for " + client
	case client != "":
		return conn + " the matter for " + client
	case title != "":
		return conn + " the " + title + " matter"
	default:
		return conn + " this matter"
	}
}
