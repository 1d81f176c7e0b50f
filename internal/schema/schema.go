// Package schema defines the HCL block structures for model and target
// description files. The internal/hcl loader decodes files into these
// structs and translates them into the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// File is the top-level structure of any description file. A file carries
// a model block, a target block, or both.
type File struct {
	Model  *Model   `hcl:"model,block"`
	Target *Target  `hcl:"target,block"`
	Body   hcl.Body `hcl:",remain"`
}

// --- Model description ---

// Model represents a `model` block: the dataflow program to compile.
type Model struct {
	Name    string    `hcl:"name,label"`
	Inputs  []*Input  `hcl:"input,block"`
	Nodes   []*Node   `hcl:"node,block"`
	Outputs []*Output `hcl:"output,block"`
}

// Input declares one boundary input tensor.
type Input struct {
	Name  string `hcl:"name,label"`
	DType string `hcl:"dtype,optional"`
	Dims  []int  `hcl:"dims"`
}

// Node declares one operator instance. When `outputs` is omitted the node
// produces a single value named after the node itself.
type Node struct {
	Name    string   `hcl:"name,label"`
	Op      string   `hcl:"op,label"`
	Inputs  []string `hcl:"inputs,optional"`
	Outputs []string `hcl:"outputs,optional"`

	KernelShape []int `hcl:"kernel_shape,optional"`
	Strides     []int `hcl:"strides,optional"`
	Pads        []int `hcl:"pads,optional"`
	Group       []int `hcl:"group,optional"`
	Shape       []int `hcl:"shape,optional"`
}

// Output declares one boundary output by value name.
type Output struct {
	Name string `hcl:"name,label"`
}

// --- Target description ---

// Target represents a `target` block: the accelerator to schedule for.
type Target struct {
	Name      string      `hcl:"name,label"`
	Resources []*Resource `hcl:"resource,block"`
	Operators []*Operator `hcl:"operator,block"`
	Default   *Default    `hcl:"default_operator,block"`
}

// Resource declares one execution resource class and its unit count.
type Resource struct {
	Name  string `hcl:"name,label"`
	Units int    `hcl:"units"`
}

// Operator maps one operator kind onto a resource class with a cycle cost.
type Operator struct {
	Kind     string `hcl:"kind,label"`
	Resource string `hcl:"resource"`
	Cycles   int    `hcl:"cycles"`
}

// Default is the cost entry for operator kinds without an explicit entry.
type Default struct {
	Resource string `hcl:"resource"`
	Cycles   int    `hcl:"cycles"`
}
