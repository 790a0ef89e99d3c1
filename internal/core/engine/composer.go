package engine

import (
	"strings"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

// Compose joins section sentences into one paragraph. Every section after
// the first is introduced by a section connective.
func Compose(sections []string, connectives []string, sel driven.PhraseSelector) string {
	parts := make([]string, 0, len(sections))
	for i, section := range sections {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		if i > 0 && len(parts) > 0 {
			if conn := sel.Pick(connectives); conn != "" {
				section = conn + " " + lowerFirst(section)
			}
		}
		parts = append(parts, section)
	}
	return strings.Join(parts, " ")
}

// FormatNarrative normalises whitespace, capitalises the first character and
// guarantees the text ends with a period.
func FormatNarrative(text string) string {
	text = normalizeWhitespace(text)
	if text == "" {
		return ""
	}
	text = capitalizeFirst(text)

	trimmed := strings.TrimRight(text, ",;:!?-")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return ""
	}
	if !strings.HasSuffix(trimmed, ".") {
		trimmed += "."
	}
	return trimmed
}
