// Package rewriters provides alternative phrasings of generated narratives.
package rewriters

import (
	"github.com/immanueldhliso-sys/lexohub-narrative/internal/core/ports/driven"
)

// Pipeline chains multiple Rewriters and runs them in order.
type Pipeline struct {
	rewriters []driven.Rewriter
}

// NewPipeline creates a new rewriting pipeline with the given rewriters.
// Rewriters are executed in the order provided.
func NewPipeline(rewriters ...driven.Rewriter) *Pipeline {
	return &Pipeline{
		rewriters: rewriters,
	}
}

// Name returns the names of the chained rewriters joined with "+".
func (p *Pipeline) Name() string {
	name := ""
	for i, r := range p.rewriters {
		if i > 0 {
			name += "+"
		}
		name += r.Name()
	}
	return name
}

// Rewrite passes the text through every rewriter in order.
func (p *Pipeline) Rewrite(text string) string {
	for _, r := range p.rewriters {
		text = r.Rewrite(text)
	}
	return text
}

// Add appends a rewriter to the pipeline.
func (p *Pipeline) Add(r driven.Rewriter) {
	p.rewriters = append(p.rewriters, r)
}

// Len returns the number of rewriters in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.rewriters)
}
