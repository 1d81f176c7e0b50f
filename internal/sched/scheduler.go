package sched

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/dlacgo/internal/ctxlog"
	"github.com/vk/dlacgo/internal/ir"
	"github.com/vk/dlacgo/internal/target"
)

var (
	// ErrNoBackend is returned when the scheduler is run without target
	// resource information. The graph is left untouched.
	ErrNoBackend = errors.New("no backend information for scheduling")

	// ErrInconsistentDegree means a dependent node was missing from the
	// degree map during propagation: the graph and the analysis diverged,
	// which is fatal.
	ErrInconsistentDegree = errors.New("dependent node missing from degree map")

	// ErrStarvation means ready nodes remain but every usable resource
	// unit is taken and no release is pending.
	ErrStarvation = errors.New("execution resources saturated with no pending release")
)

// Options controls scheduler policy.
type Options struct {
	// AdvancePerRound ages resource occupancy once per dispatch round, so
	// units freed by elapsed cycles are visible to the next round. This is
	// the default; turning it off makes occupancy fill monotonically,
	// which is only useful for studying dispatch order on targets with
	// enough units for the whole graph.
	AdvancePerRound bool
}

// DefaultOptions returns the standard scheduling policy.
func DefaultOptions() Options {
	return Options{AdvancePerRound: true}
}

// Result is the outcome of a scheduling run.
type Result struct {
	// Order is the full dispatch order. Every schedulable node appears
	// exactly once.
	Order []*ir.Node
	// Rounds groups the order by dispatch round.
	Rounds [][]*ir.Node
	// Cycles is the virtual time consumed, measured from the first
	// dispatch to the last release. Zero when AdvancePerRound is off.
	Cycles int
}

// Round returns the round number a node was dispatched in, or -1.
func (r *Result) Round(n *ir.Node) int {
	for i, round := range r.Rounds {
		for _, cand := range round {
			if cand == n {
				return i
			}
		}
	}
	return -1
}

// Scheduler assigns graph nodes to execution resources.
type Scheduler struct {
	backend *target.Backend
	opts    Options
	occ     *occupancy
}

// New creates a scheduler for the given backend. A nil backend is allowed
// here and rejected by Run, mirroring how the pipeline reports a missing
// target as a pass failure rather than a construction panic.
func New(backend *target.Backend, opts Options) *Scheduler {
	return &Scheduler{backend: backend, opts: opts}
}

// Run schedules the graph. It materializes boundary load/store nodes
// (once), then list-schedules every node, and returns the dispatch order.
func (s *Scheduler) Run(ctx context.Context, g *ir.Graph) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	if s.backend == nil {
		return nil, ErrNoBackend
	}
	s.occ = newOccupancy(s.backend)

	if hasBoundaryNodes(g) {
		logger.Debug("Scheduler: boundary nodes already materialized, skipping.")
	} else {
		insertBoundaryNodes(ctx, g)
	}

	dmap := buildDegreeMap(ctx, g)

	// Seed the worklist with degree-zero nodes in declaration order; this
	// is the baseline tie-break among equally ready nodes.
	var worklist []*ir.Node
	for _, n := range g.Nodes() {
		if n.Kind == ir.KindUndefined {
			continue
		}
		if dmap[n] == 0 {
			worklist = append(worklist, n)
		}
	}
	logger.Debug("Scheduler: worklist seeded.",
		"ready", len(worklist), "total", len(dmap))

	res := &Result{}
	for len(worklist) > 0 {
		picked := s.pickNext(&worklist)

		if len(picked) == 0 && (!s.opts.AdvancePerRound || s.occ.empty()) {
			return nil, fmt.Errorf("%w (%d nodes still ready)", ErrStarvation, len(worklist))
		}

		if len(picked) > 0 {
			res.Rounds = append(res.Rounds, picked)
			res.Order = append(res.Order, picked...)
		}

		// A node's outputs become available the moment it is dispatched,
		// even though it may occupy its resource for more cycles. Walk
		// each output's consumers and unblock the ones whose last
		// dependency this was.
		for _, n := range picked {
			for _, out := range n.Outputs {
				for _, user := range out.Uses() {
					if user.Kind == ir.KindUndefined {
						continue
					}
					deg, ok := dmap[user]
					if !ok {
						return nil, fmt.Errorf("%w: node %q", ErrInconsistentDegree, user.Name)
					}
					deg--
					dmap[user] = deg
					if deg == 0 {
						worklist = append(worklist, user)
					}
				}
			}
		}

		if s.opts.AdvancePerRound && !s.occ.empty() {
			res.Cycles += s.occ.advance()
		}
	}

	// Drain the remaining occupants so Cycles covers the full makespan.
	if s.opts.AdvancePerRound {
		for !s.occ.empty() {
			res.Cycles += s.occ.advance()
		}
	}

	logger.Info("Scheduler: run complete.",
		"nodes", len(res.Order), "rounds", len(res.Rounds), "cycles", res.Cycles)
	return res, nil
}
