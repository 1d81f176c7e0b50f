package ir

import "fmt"

// Graph is a dataflow program: an ordered list of nodes plus the boundary
// values that the surrounding system feeds in and reads out.
type Graph struct {
	// Name is the model name from the description file.
	Name string

	nodes   []*Node
	values  map[string]*Value
	inputs  []*Value
	outputs []*Value

	// nextID feeds generated names for pass-created nodes and values.
	nextID int
}

// New returns an empty graph.
func New(name string) *Graph {
	return &Graph{
		Name:   name,
		values: make(map[string]*Value),
	}
}

// Nodes returns the graph's nodes in declaration order. The returned slice
// is the graph's own backing storage and must not be mutated by callers.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Inputs returns the graph's boundary input values in declaration order.
func (g *Graph) Inputs() []*Value {
	return g.inputs
}

// Outputs returns the graph's boundary output values in declaration order.
func (g *Graph) Outputs() []*Value {
	return g.outputs
}

// Terminal returns the last node in graph order, or nil for an empty graph.
func (g *Graph) Terminal() *Node {
	if len(g.nodes) == 0 {
		return nil
	}
	return g.nodes[len(g.nodes)-1]
}

// Value returns the named value, or nil if the graph has none.
func (g *Graph) Value(name string) *Value {
	return g.values[name]
}

// NewValue creates and registers a value with the given name. It panics if
// the name is already taken; the builder validates names before calling.
func (g *Graph) NewValue(name string) *Value {
	if _, ok := g.values[name]; ok {
		panic(fmt.Sprintf("ir: duplicate value name %q", name))
	}
	v := &Value{Name: name}
	g.values[name] = v
	return v
}

// AddInput registers v as a graph boundary input.
func (g *Graph) AddInput(v *Value) {
	g.inputs = append(g.inputs, v)
}

// AddOutput registers v as a graph boundary output.
func (g *Graph) AddOutput(v *Value) {
	g.outputs = append(g.outputs, v)
}

// Create appends a new node of the given kind consuming the given inputs,
// producing a single fresh output value. The node lands at the tail of the
// graph; use InsertBefore to splice it elsewhere.
func (g *Graph) Create(kind string, inputs ...*Value) *Node {
	g.nextID++
	name := fmt.Sprintf("%s_%d", kind, g.nextID)
	n := &Node{
		Kind:   kind,
		Name:   name,
		Inputs: inputs,
		graph:  g,
		seq:    len(g.nodes),
	}
	for _, in := range inputs {
		in.uses = append(in.uses, n)
	}
	out := g.NewValue(name + "_out")
	out.producer = n
	n.Outputs = []*Value{out}
	g.nodes = append(g.nodes, n)
	return n
}

// append wires a builder-constructed node into the graph at the tail.
func (g *Graph) append(n *Node) {
	n.graph = g
	n.seq = len(g.nodes)
	for _, in := range n.Inputs {
		in.uses = append(in.uses, n)
	}
	for _, out := range n.Outputs {
		out.producer = n
	}
	g.nodes = append(g.nodes, n)
}

// InsertBefore moves n so it sits immediately before anchor in graph order
// and renumbers all node positions. Both nodes must belong to g.
func (g *Graph) InsertBefore(n, anchor *Node) {
	if n.graph != g || anchor.graph != g {
		panic("ir: InsertBefore across graphs")
	}
	if n == anchor {
		return
	}
	// Remove n from its current slot.
	idx := -1
	for i, cand := range g.nodes {
		if cand == n {
			idx = i
			break
		}
	}
	g.nodes = append(g.nodes[:idx], g.nodes[idx+1:]...)

	at := -1
	for i, cand := range g.nodes {
		if cand == anchor {
			at = i
			break
		}
	}
	g.nodes = append(g.nodes, nil)
	copy(g.nodes[at+1:], g.nodes[at:])
	g.nodes[at] = n

	for i, cand := range g.nodes {
		cand.seq = i
	}
}
