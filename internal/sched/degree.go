package sched

import (
	"context"

	"github.com/vk/dlacgo/internal/ctxlog"
	"github.com/vk/dlacgo/internal/ir"
)

// buildDegreeMap counts, for every schedulable node, how many of its
// inputs are produced by a real node. An input with no producer is a
// malformed edge: it is reported once and then treated as always
// satisfied, so a single dangling value cannot wedge the whole pass.
func buildDegreeMap(ctx context.Context, g *ir.Graph) map[*ir.Node]int {
	logger := ctxlog.FromContext(ctx)

	dmap := make(map[*ir.Node]int, len(g.Nodes()))
	for _, n := range g.Nodes() {
		if n.Kind == ir.KindUndefined {
			continue
		}
		deg := len(n.Inputs)
		for _, v := range n.Inputs {
			if v.Producer() == nil {
				logger.Warn("Degree: node consumes a value that no node produces.",
					"node", n.Name, "kind", n.Kind, "value", v.Name)
				deg--
			}
		}
		dmap[n] = deg
	}
	return dmap
}
