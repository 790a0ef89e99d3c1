package engine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\f\r\v]+`)
	spaceAroundLF   = regexp.MustCompile(` *\n *`)
	excessLF        = regexp.MustCompile(`\n{3,}`)
)

// normalizeWhitespace collapses runs of spaces and tabs, trims around line
// breaks and caps blank lines at one.
func normalizeWhitespace(s string) string {
	s = horizontalSpace.ReplaceAllString(s, " ")
	s = spaceAroundLF.ReplaceAllString(s, "\n")
	s = excessLF.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// lowerFirst lower-cases the first letter unless the first word looks like an
// acronym or a mixed-case name ("NDA", "McKenzie").
func lowerFirst(s string) string {
	word := s
	if i := strings.IndexAny(s, " ,;:"); i >= 0 {
		word = s[:i]
	}
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError || !unicode.IsUpper(r) {
		return s
	}
	for _, rest := range word[size:] {
		if unicode.IsUpper(rest) {
			return s
		}
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// joinWithAnd joins items as "a", "a and b" or "a, b, and c".
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func lowerAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return itoa(n) + " " + unit + "s"
}
