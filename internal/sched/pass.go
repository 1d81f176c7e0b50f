package sched

import (
	"context"

	"github.com/vk/dlacgo/internal/ir"
	"github.com/vk/dlacgo/internal/shape"
	"github.com/vk/dlacgo/internal/target"
)

// PassName identifies the scheduling pass in the pipeline.
const PassName = "node-scheduler"

// Pass adapts the scheduler to the pass pipeline and keeps the last run's
// result for reporting.
type Pass struct {
	sched  *Scheduler
	result *Result
}

// NewPass wraps a scheduler for the given backend as a pipeline pass.
func NewPass(backend *target.Backend, opts Options) *Pass {
	return &Pass{sched: New(backend, opts)}
}

// Name implements pass.Pass.
func (p *Pass) Name() string { return PassName }

// Requires implements pass.Pass. Boundary stores copy value metadata, so
// output shapes must be final before scheduling runs.
func (p *Pass) Requires() []string { return []string{shape.PassName} }

// Run implements pass.Pass.
func (p *Pass) Run(ctx context.Context, g *ir.Graph) error {
	result, err := p.sched.Run(ctx, g)
	if err != nil {
		return err
	}
	p.result = result
	return nil
}

// Result returns the outcome of the last Run, or nil.
func (p *Pass) Result() *Result {
	return p.result
}
