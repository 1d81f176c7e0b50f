package ir

// Value is a typed edge between a producing node and its consumers.
type Value struct {
	// Name is the unique name of the value within its graph.
	Name string
	// DType is the element type, e.g. "f32".
	DType string
	// Dims holds the tensor dimensions, outermost first. Nil until shape
	// inference has run for values produced by nodes.
	Dims []int

	producer *Node
	uses     []*Node
}

// Producer returns the node that produces this value, or nil for graph
// inputs and unbound values.
func (v *Value) Producer() *Node {
	return v.producer
}

// Uses returns the consumers of this value in the order they were wired.
// A node consuming the value through more than one input slot appears once
// per slot.
func (v *Value) Uses() []*Node {
	return v.uses
}

// CopyMetadata copies the element type and dimensions from src onto v.
// The name and the wiring are left untouched.
func (v *Value) CopyMetadata(src *Value) {
	v.DType = src.DType
	if src.Dims == nil {
		v.Dims = nil
		return
	}
	v.Dims = append([]int(nil), src.Dims...)
}

// ReplaceAllUsesWith rewires every consumer of v to consume repl instead.
// After the call v has no uses.
func (v *Value) ReplaceAllUsesWith(repl *Value) {
	if v == repl {
		return
	}
	for _, user := range v.uses {
		for i, in := range user.Inputs {
			if in == v {
				user.Inputs[i] = repl
			}
		}
		repl.uses = append(repl.uses, user)
	}
	v.uses = nil
}

func (v *Value) removeUse(n *Node) {
	for i, u := range v.uses {
		if u == n {
			v.uses = append(v.uses[:i], v.uses[i+1:]...)
			return
		}
	}
}
