// Package pass provides the compilation pipeline: a sequence of named
// graph transformations with declared prerequisites, run in registration
// order.
package pass

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/dlacgo/internal/ctxlog"
	"github.com/vk/dlacgo/internal/ir"
)

// Pass is a single graph transformation or analysis.
type Pass interface {
	// Name identifies the pass in logs and prerequisite declarations.
	Name() string
	// Requires lists pass names that must have run earlier in the pipeline.
	Requires() []string
	// Run executes the pass, mutating the graph in place.
	Run(ctx context.Context, g *ir.Graph) error
}

// Pipeline runs passes in the order they were added, enforcing that every
// declared prerequisite ran first.
type Pipeline struct {
	passes []Pass
}

// Add appends a pass to the pipeline.
func (p *Pipeline) Add(ps Pass) {
	p.passes = append(p.passes, ps)
}

// Run executes all passes against the graph. It stops at the first
// failure, wrapping the error with the failing pass's name.
func (p *Pipeline) Run(ctx context.Context, g *ir.Graph) error {
	logger := ctxlog.FromContext(ctx)

	ran := make(map[string]bool, len(p.passes))
	for _, ps := range p.passes {
		for _, req := range ps.Requires() {
			if !ran[req] {
				return fmt.Errorf("pass %q requires %q to run first", ps.Name(), req)
			}
		}

		start := time.Now()
		logger.Debug("Pipeline: pass starting.", "pass", ps.Name())
		if err := ps.Run(ctx, g); err != nil {
			return fmt.Errorf("pass %q: %w", ps.Name(), err)
		}
		logger.Debug("Pipeline: pass finished.",
			"pass", ps.Name(), "elapsed", time.Since(start))
		ran[ps.Name()] = true
	}
	return nil
}
