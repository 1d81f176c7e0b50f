package hcl

import (
	"github.com/vk/dlacgo/internal/config"
	"github.com/vk/dlacgo/internal/schema"
)

// translateModel converts the HCL model schema into the agnostic model spec.
func translateModel(m *schema.Model) *config.ModelSpec {
	spec := &config.ModelSpec{Name: m.Name}
	for _, in := range m.Inputs {
		dtype := in.DType
		if dtype == "" {
			dtype = "f32"
		}
		spec.Inputs = append(spec.Inputs, &config.TensorSpec{
			Name:  in.Name,
			DType: dtype,
			Dims:  in.Dims,
		})
	}
	for _, n := range m.Nodes {
		spec.Nodes = append(spec.Nodes, &config.NodeSpec{
			Name:    n.Name,
			Op:      n.Op,
			Inputs:  n.Inputs,
			Outputs: n.Outputs,
			Attrs:   translateAttrs(n),
		})
	}
	for _, out := range m.Outputs {
		spec.Outputs = append(spec.Outputs, out.Name)
	}
	return spec
}

// translateAttrs collects the optional operator attributes that were set.
func translateAttrs(n *schema.Node) map[string][]int {
	attrs := make(map[string][]int)
	if len(n.KernelShape) > 0 {
		attrs["kernel_shape"] = n.KernelShape
	}
	if len(n.Strides) > 0 {
		attrs["strides"] = n.Strides
	}
	if len(n.Pads) > 0 {
		attrs["pads"] = n.Pads
	}
	if len(n.Group) > 0 {
		attrs["group"] = n.Group
	}
	if len(n.Shape) > 0 {
		attrs["shape"] = n.Shape
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// translateTarget converts the HCL target schema into the agnostic target spec.
func translateTarget(t *schema.Target) *config.TargetSpec {
	spec := &config.TargetSpec{Name: t.Name}
	for _, r := range t.Resources {
		spec.Resources = append(spec.Resources, &config.ResourceSpec{
			Name:  r.Name,
			Units: r.Units,
		})
	}
	for _, op := range t.Operators {
		spec.Operators = append(spec.Operators, &config.OperatorSpec{
			Kind:     op.Kind,
			Resource: op.Resource,
			Cycles:   op.Cycles,
		})
	}
	if t.Default != nil {
		spec.Default = &config.OperatorSpec{
			Resource: t.Default.Resource,
			Cycles:   t.Default.Cycles,
		}
	}
	return spec
}
