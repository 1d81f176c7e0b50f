package config

// Model is the unified, format-agnostic representation of one compilation
// job: a model architecture plus a target description.
type Model struct {
	Arch   *ModelSpec
	Target *TargetSpec
}

// ModelSpec describes a dataflow model: its boundary tensors and its
// operator nodes in declaration order.
type ModelSpec struct {
	Name    string
	Inputs  []*TensorSpec
	Nodes   []*NodeSpec
	Outputs []string
}

// TensorSpec describes one named boundary tensor.
type TensorSpec struct {
	Name  string
	DType string
	Dims  []int
}

// NodeSpec describes one operator instance.
type NodeSpec struct {
	// Name is the instance name; it doubles as the output value name when
	// Outputs is empty.
	Name string
	// Op is the operator kind, e.g. "Conv".
	Op string
	// Inputs and Outputs name the values this node consumes and produces.
	Inputs  []string
	Outputs []string
	// Attrs holds integer-list operator attributes (kernel_shape, strides,
	// pads, ...).
	Attrs map[string][]int
}

// TargetSpec describes a target accelerator: its execution resources and
// the cost table mapping operator kinds onto them.
type TargetSpec struct {
	Name      string
	Resources []*ResourceSpec
	Operators []*OperatorSpec
	// Default is the cost entry applied to operator kinds with no explicit
	// entry and no built-in default.
	Default *OperatorSpec
}

// ResourceSpec describes one execution resource class.
type ResourceSpec struct {
	Name  string
	Units int
}

// OperatorSpec maps an operator kind to a resource class and a cycle cost.
type OperatorSpec struct {
	Kind     string
	Resource string
	Cycles   int
}
