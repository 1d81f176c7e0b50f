package sched

import (
	"context"

	"github.com/vk/dlacgo/internal/ctxlog"
	"github.com/vk/dlacgo/internal/ir"
)

// hasBoundaryNodes reports whether boundary materialization has already
// run on this graph. Stores for unconsumed outputs land at the graph tail,
// so a Store terminal marks a materialized graph.
func hasBoundaryNodes(g *ir.Graph) bool {
	t := g.Terminal()
	return t != nil && t.Kind == ir.KindStore
}

// boundaryPlan is one pending load or store insertion. Planning is
// separated from mutation: splicing nodes in renumbers graph order, which
// the earliest/latest-use searches depend on.
type boundaryPlan struct {
	value *ir.Value
	// anchor is the node to insert in front of; nil appends at the tail.
	anchor *ir.Node
	store  bool
}

// insertBoundaryNodes rewrites the graph so every boundary value flows
// through an explicit Load or Store node.
func insertBoundaryNodes(ctx context.Context, g *ir.Graph) {
	logger := ctxlog.FromContext(ctx)

	var plans []boundaryPlan
	for _, v := range g.Inputs() {
		first := earliestUse(v)
		if first == nil {
			logger.Debug("Boundary: input has no consumers, skipping load.", "value", v.Name)
			continue
		}
		plans = append(plans, boundaryPlan{value: v, anchor: first})
	}
	for _, v := range g.Outputs() {
		plans = append(plans, boundaryPlan{value: v, anchor: latestUse(v), store: true})
	}

	loads, stores := 0, 0
	for _, p := range plans {
		if p.store {
			storeN := g.Create(ir.KindStore, p.value)
			storeN.Output().CopyMetadata(p.value)
			if p.anchor != nil {
				g.InsertBefore(storeN, p.anchor)
			}
			stores++
			continue
		}
		loadN := g.Create(ir.KindLoad)
		loadN.Output().CopyMetadata(p.value)
		g.InsertBefore(loadN, p.anchor)
		p.value.ReplaceAllUsesWith(loadN.Output())
		loads++
	}
	logger.Debug("Boundary: materialization complete.", "loads", loads, "stores", stores)
}

// earliestUse returns the consumer of v that appears first in graph
// order, or nil if v has no consumers.
func earliestUse(v *ir.Value) *ir.Node {
	var first *ir.Node
	for _, u := range v.Uses() {
		if first == nil || u.IsBefore(first) {
			first = u
		}
	}
	return first
}

// latestUse returns the consumer of v that appears last in graph order,
// or nil if v has no consumers.
func latestUse(v *ir.Value) *ir.Node {
	var last *ir.Node
	for _, u := range v.Uses() {
		if last == nil || last.IsBefore(u) {
			last = u
		}
	}
	return last
}
