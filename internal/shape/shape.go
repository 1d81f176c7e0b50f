// Package shape implements the output shape inference pass. It walks the
// graph in declaration order and stamps element type and dimensions onto
// every node output value, so later passes can rely on boundary metadata
// being present.
package shape

import (
	"context"
	"fmt"

	"github.com/vk/dlacgo/internal/ctxlog"
	"github.com/vk/dlacgo/internal/ir"
)

// PassName is the name the scheduler declares as its prerequisite.
const PassName = "shape-inference"

// Pass is the shape inference pass.
type Pass struct{}

// NewPass returns the shape inference pass.
func NewPass() *Pass {
	return &Pass{}
}

// Name implements pass.Pass.
func (p *Pass) Name() string { return PassName }

// Requires implements pass.Pass.
func (p *Pass) Requires() []string { return nil }

// Run infers output metadata for every node in declaration order.
func (p *Pass) Run(ctx context.Context, g *ir.Graph) error {
	for _, n := range g.Nodes() {
		if n.Kind == ir.KindUndefined || len(n.Outputs) == 0 {
			continue
		}
		if err := inferNode(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func inferNode(ctx context.Context, n *ir.Node) error {
	switch n.Kind {
	case "Conv":
		return inferConv(n)
	case "MaxPool", "AveragePool":
		return inferPool(ctx, n)
	case "GlobalAveragePool":
		return inferGlobalPool(n)
	case "Gemm", "MatMul":
		return inferMatMul(n)
	case "Reshape":
		return inferReshape(ctx, n)
	default:
		inferCopyThrough(ctx, n)
		return nil
	}
}

// inferCopyThrough propagates the first input's metadata onto every
// output. This covers the elementwise operators and acts as a tolerant
// fallback for kinds the pass does not model.
func inferCopyThrough(ctx context.Context, n *ir.Node) {
	if len(n.Inputs) == 0 {
		return
	}
	if !known(n.Kind) {
		ctxlog.FromContext(ctx).Debug("Shape: unmodeled operator kind, copying input metadata.",
			"node", n.Name, "kind", n.Kind)
	}
	for _, out := range n.Outputs {
		out.CopyMetadata(n.Inputs[0])
	}
}

// known lists the kinds copy-through is the intended rule for, not a
// fallback.
func known(kind string) bool {
	switch kind {
	case "Relu", "Sigmoid", "Tanh", "Softmax", "Add", "Mul", "LRN",
		"Reshape", "Concat", ir.KindLoad, ir.KindStore:
		return true
	}
	return false
}

// inferConv computes NCHW convolution output dims from the data and
// weight inputs plus the strides/pads attributes.
func inferConv(n *ir.Node) error {
	if len(n.Inputs) < 2 {
		return fmt.Errorf("node %q: Conv needs data and weight inputs", n.Name)
	}
	data, weight := n.Inputs[0], n.Inputs[1]
	if len(data.Dims) != 4 || len(weight.Dims) != 4 {
		return fmt.Errorf("node %q: Conv expects 4-D data and weight, got %v and %v",
			n.Name, data.Dims, weight.Dims)
	}

	kernel := n.Attr("kernel_shape")
	if kernel == nil {
		kernel = weight.Dims[2:]
	}
	strides := attrOr(n, "strides", []int{1, 1})
	pads := attrOr(n, "pads", []int{0, 0})

	out := []int{data.Dims[0], weight.Dims[0]}
	for i := 0; i < 2; i++ {
		d := spatialDim(data.Dims[2+i], kernel[i], strides[i], pads[i])
		if d <= 0 {
			return fmt.Errorf("node %q: kernel %v does not fit input %v", n.Name, kernel, data.Dims)
		}
		out = append(out, d)
	}
	stamp(n, data.DType, out)
	return nil
}

// inferPool computes pooled spatial dims; channel count is preserved.
func inferPool(ctx context.Context, n *ir.Node) error {
	if len(n.Inputs) == 0 {
		return fmt.Errorf("node %q: %s needs an input", n.Name, n.Kind)
	}
	data := n.Inputs[0]
	kernel := n.Attr("kernel_shape")
	if kernel == nil || len(data.Dims) != 4 {
		// Without a kernel there is nothing to compute; keep going with
		// the input metadata rather than failing the whole pipeline.
		inferCopyThrough(ctx, n)
		return nil
	}
	strides := attrOr(n, "strides", kernel)
	pads := attrOr(n, "pads", []int{0, 0})

	out := []int{data.Dims[0], data.Dims[1]}
	for i := 0; i < 2; i++ {
		d := spatialDim(data.Dims[2+i], kernel[i], strides[i], pads[i])
		if d <= 0 {
			return fmt.Errorf("node %q: kernel %v does not fit input %v", n.Name, kernel, data.Dims)
		}
		out = append(out, d)
	}
	stamp(n, data.DType, out)
	return nil
}

func inferGlobalPool(n *ir.Node) error {
	if len(n.Inputs) == 0 || len(n.Inputs[0].Dims) != 4 {
		return fmt.Errorf("node %q: GlobalAveragePool expects a 4-D input", n.Name)
	}
	data := n.Inputs[0]
	stamp(n, data.DType, []int{data.Dims[0], data.Dims[1], 1, 1})
	return nil
}

// inferReshape applies the declared target shape; element counts must
// agree when the input shape is known.
func inferReshape(ctx context.Context, n *ir.Node) error {
	if len(n.Inputs) == 0 {
		return fmt.Errorf("node %q: Reshape needs an input", n.Name)
	}
	shape := n.Attr("shape")
	if shape == nil {
		inferCopyThrough(ctx, n)
		return nil
	}
	data := n.Inputs[0]
	if data.Dims != nil && elements(data.Dims) != elements(shape) {
		return fmt.Errorf("node %q: cannot reshape %v into %v", n.Name, data.Dims, shape)
	}
	stamp(n, data.DType, shape)
	return nil
}

func elements(dims []int) int {
	total := 1
	for _, d := range dims {
		total *= d
	}
	return total
}

func inferMatMul(n *ir.Node) error {
	if len(n.Inputs) < 2 {
		return fmt.Errorf("node %q: %s needs two inputs", n.Name, n.Kind)
	}
	a, b := n.Inputs[0], n.Inputs[1]
	if len(a.Dims) != 2 || len(b.Dims) != 2 {
		return fmt.Errorf("node %q: %s expects 2-D inputs, got %v and %v",
			n.Name, n.Kind, a.Dims, b.Dims)
	}
	if a.Dims[1] != b.Dims[0] {
		return fmt.Errorf("node %q: inner dimensions disagree: %v x %v", n.Name, a.Dims, b.Dims)
	}
	stamp(n, a.DType, []int{a.Dims[0], b.Dims[1]})
	return nil
}

func spatialDim(in, kernel, stride, pad int) int {
	return (in+2*pad-kernel)/stride + 1
}

func attrOr(n *ir.Node, name string, def []int) []int {
	if v := n.Attr(name); v != nil {
		return v
	}
	return def
}

func stamp(n *ir.Node, dtype string, dims []int) {
	for _, out := range n.Outputs {
		out.DType = dtype
		out.Dims = append([]int(nil), dims...)
	}
}
