package registry

import (
	"github.com/vk/dlacgo/internal/ir"
	"github.com/vk/dlacgo/internal/kernels"
)

// Canonical resource class names used by the built-in descriptors. A target
// description is free to define others for its explicit operator entries.
const (
	ResourceMAC = "mac"
	ResourceALU = "alu"
	ResourceDMA = "dma"
)

// builtins is the default operator set. Cycle costs are coarse per-tile
// estimates; a target description overrides them per operator kind.
var builtins = []*Operator{
	{Kind: ir.KindLoad, Resource: ResourceDMA, Cycles: 8},
	{Kind: ir.KindStore, Resource: ResourceDMA, Cycles: 8},

	{Kind: "Conv", Resource: ResourceMAC, Cycles: 64},
	{Kind: "Gemm", Resource: ResourceMAC, Cycles: 32},
	{Kind: "MatMul", Resource: ResourceMAC, Cycles: 32},

	{Kind: "MaxPool", Resource: ResourceALU, Cycles: 4},
	{Kind: "AveragePool", Resource: ResourceALU, Cycles: 4},
	{Kind: "GlobalAveragePool", Resource: ResourceALU, Cycles: 4},
	{Kind: "LRN", Resource: ResourceALU, Cycles: 8},
	{Kind: "Reshape", Resource: ResourceALU, Cycles: 1},
	{Kind: "Concat", Resource: ResourceALU, Cycles: 2},

	{Kind: "Relu", Resource: ResourceALU, Cycles: 1, Unary: kernels.Relu},
	{Kind: "Sigmoid", Resource: ResourceALU, Cycles: 4, Unary: kernels.Sigmoid},
	{Kind: "Tanh", Resource: ResourceALU, Cycles: 4, Unary: kernels.Tanh},
	{Kind: "Softmax", Resource: ResourceALU, Cycles: 8, Unary: kernels.Softmax},
	{Kind: "Add", Resource: ResourceALU, Cycles: 1, Binary: kernels.Add},
	{Kind: "Mul", Resource: ResourceALU, Cycles: 1, Binary: kernels.Mul},
}
