// Package substitute provides a rewriter that replaces whole words and
// phrases from a substitution table.
package substitute

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/domain"
)

type rule struct {
	pattern *regexp.Regexp
	to      string
}

// Rewriter applies substitutions in table order. Matching is
// case-insensitive on word boundaries; a capitalised match produces a
// capitalised replacement.
type Rewriter struct {
	name  string
	rules []rule
}

// New creates a substitution rewriter. Entries with an empty From are ignored.
func New(name string, subs []domain.Substitution) *Rewriter {
	r := &Rewriter{name: name}
	for _, s := range subs {
		from := strings.TrimSpace(s.From)
		if from == "" {
			continue
		}
		r.rules = append(r.rules, rule{
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(from) + `\b`),
			to:      s.To,
		})
	}
	return r
}

// Name returns the rewriter name.
func (r *Rewriter) Name() string {
	return r.name
}

// Len returns the number of substitution rules.
func (r *Rewriter) Len() int {
	return len(r.rules)
}

// Rewrite applies every substitution.
func (r *Rewriter) Rewrite(text string) string {
	for _, rl := range r.rules {
		to := rl.to
		text = rl.pattern.ReplaceAllStringFunc(text, func(match string) string {
			first, _ := utf8.DecodeRuneInString(match)
			if unicode.IsUpper(first) {
				return capitalize(to)
			}
			return to
		})
	}
	return text
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
