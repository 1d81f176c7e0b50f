package ir

import (
	"context"
	"fmt"

	"github.com/vk/dlacgo/internal/config"
	"github.com/vk/dlacgo/internal/ctxlog"
)

// Build constructs a validated graph from a model description.
func Build(ctx context.Context, spec *config.ModelSpec) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.", "model", spec.Name)

	g := New(spec.Name)

	// First pass: register boundary input values.
	for _, in := range spec.Inputs {
		if g.Value(in.Name) != nil {
			return nil, fmt.Errorf("duplicate input %q", in.Name)
		}
		v := g.NewValue(in.Name)
		v.DType = in.DType
		v.Dims = append([]int(nil), in.Dims...)
		g.AddInput(v)
	}
	logger.Debug("Build: inputs registered.", "count", len(g.inputs))

	// Second pass: create nodes and wire edges in declaration order.
	for _, ns := range spec.Nodes {
		n := &Node{
			Kind:  ns.Op,
			Name:  ns.Name,
			Attrs: ns.Attrs,
		}
		for _, name := range ns.Inputs {
			v := g.Value(name)
			if v == nil {
				// Tolerated: the value is never materialized by a producer.
				// The scheduler's degree accounting compensates and warns.
				logger.Debug("Build: node references an undeclared value.",
					"node", ns.Name, "value", name)
				v = g.NewValue(name)
			}
			n.Inputs = append(n.Inputs, v)
		}
		outNames := ns.Outputs
		if len(outNames) == 0 {
			outNames = []string{ns.Name}
		}
		for _, name := range outNames {
			if prev := g.Value(name); prev != nil {
				if prev.Producer() != nil {
					return nil, fmt.Errorf("value %q has two producers: %q and %q",
						name, prev.Producer().Name, ns.Name)
				}
				// Forward reference from an earlier node; adopt it.
				n.Outputs = append(n.Outputs, prev)
				continue
			}
			n.Outputs = append(n.Outputs, g.NewValue(name))
		}
		g.append(n)
	}
	logger.Debug("Build: node wiring complete.", "node_count", len(g.nodes))

	// Third pass: resolve boundary outputs.
	for _, name := range spec.Outputs {
		v := g.Value(name)
		if v == nil {
			return nil, fmt.Errorf("output %q does not name a known value", name)
		}
		g.AddOutput(v)
	}

	if err := g.detectCycles(); err != nil {
		return nil, fmt.Errorf("error validating dataflow graph: %w", err)
	}
	logger.Debug("Build: cycle detection passed.")

	return g, nil
}

// detectCycles checks for circular dataflow using depth-first search.
func (g *Graph) detectCycles() error {
	visiting := make(map[*Node]bool)
	visited := make(map[*Node]bool)

	var visit func(n *Node) error
	visit = func(n *Node) error {
		if visited[n] {
			return nil
		}
		if visiting[n] {
			return fmt.Errorf("cycle detected involving node %q", n.Name)
		}
		visiting[n] = true
		for _, out := range n.Outputs {
			for _, user := range out.Uses() {
				if err := visit(user); err != nil {
					return err
				}
			}
		}
		visiting[n] = false
		visited[n] = true
		return nil
	}

	for _, n := range g.nodes {
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}
