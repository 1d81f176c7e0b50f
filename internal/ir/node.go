package ir

// Well-known node kinds. Everything else is an operator kind taken verbatim
// from the model description (e.g. "Conv", "Relu").
const (
	// KindUndefined marks a placeholder node that must never be scheduled.
	KindUndefined = "Undefined"
	// KindLoad moves a boundary input into on-chip memory.
	KindLoad = "Load"
	// KindStore moves a boundary output back out of on-chip memory.
	KindStore = "Store"
)

// Node is a single operator instance in the graph.
type Node struct {
	// Kind is the operator kind tag.
	Kind string
	// Name is the instance name. Generated for nodes created by passes.
	Name string
	// Inputs are the values this node consumes, in operator-defined order.
	Inputs []*Value
	// Outputs are the values this node produces.
	Outputs []*Value
	// Attrs holds integer-list operator attributes such as kernel_shape,
	// strides and pads.
	Attrs map[string][]int

	graph *Graph
	// seq is the node's position in graph declaration order. Renumbered by
	// the graph whenever a node is spliced in.
	seq int
}

// IsBefore reports whether n appears before other in graph order.
func (n *Node) IsBefore(other *Node) bool {
	return n.seq < other.seq
}

// Output returns the node's first output value. It panics if the node has
// no outputs; nodes created through Graph.Create always have one.
func (n *Node) Output() *Value {
	return n.Outputs[0]
}

// Attr returns the named integer-list attribute, or nil if absent.
func (n *Node) Attr(name string) []int {
	if n.Attrs == nil {
		return nil
	}
	return n.Attrs[name]
}
