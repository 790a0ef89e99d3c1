// Package concise provides a rewriter that drops section connectives.
package concise

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Name is the rewriter name.
const Name = "concise"

var sentenceStart = regexp.MustCompile(`(^|[.!?]\s+)(\p{Ll})`)

// Rewriter removes connective adverbs ("Additionally,") from the start of
// sentences and re-capitalises the sentences it touched.
type Rewriter struct {
	connectives []string
	pattern     *regexp.Regexp
}

// Option configures the rewriter.
type Option func(*Rewriter)

// WithConnectives sets the connectives to strip.
func WithConnectives(connectives ...string) Option {
	return func(r *Rewriter) {
		r.connectives = nil
		for _, c := range connectives {
			if c = strings.TrimSpace(c); c != "" {
				r.connectives = append(r.connectives, c)
			}
		}
	}
}

// New creates a concise rewriter.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{}
	for _, opt := range opts {
		opt(r)
	}

	if len(r.connectives) > 0 {
		quoted := make([]string, len(r.connectives))
		for i, c := range r.connectives {
			quoted[i] = regexp.QuoteMeta(c)
		}
		r.pattern = regexp.MustCompile(`(?i)(^|[.!?]\s+)(?:` + strings.Join(quoted, "|") + `)\s*`)
	}
	return r
}

// Name returns the rewriter name.
func (r *Rewriter) Name() string {
	return Name
}

// Rewrite strips the connectives and capitalises sentence starts.
func (r *Rewriter) Rewrite(text string) string {
	if r.pattern == nil {
		return text
	}
	text = r.pattern.ReplaceAllString(text, "$1")
	return sentenceStart.ReplaceAllStringFunc(text, func(m string) string {
		last, size := utf8.DecodeLastRuneInString(m)
		return m[:len(m)-size] + string(unicode.ToUpper(last))
	})
}
