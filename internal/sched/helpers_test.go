package sched

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/dlacgo/internal/config"
	"github.com/vk/dlacgo/internal/ir"
	"github.com/vk/dlacgo/internal/registry"
	"github.com/vk/dlacgo/internal/target"
)

// testBackend builds a small backend for scheduling tests: one mac unit,
// two alu lanes, two dma ports, and a handful of costed kinds.
func testBackend(t *testing.T) *target.Backend {
	t.Helper()
	spec := &config.TargetSpec{
		Name: "testchip",
		Resources: []*config.ResourceSpec{
			{Name: "mac", Units: 1},
			{Name: "alu", Units: 2},
			{Name: "dma", Units: 2},
		},
		Operators: []*config.OperatorSpec{
			{Kind: "Conv", Resource: "mac", Cycles: 4},
			{Kind: "Heavy", Resource: "mac", Cycles: 4},
			{Kind: "Gen", Resource: "alu", Cycles: 1},
			{Kind: ir.KindLoad, Resource: "dma", Cycles: 2},
			{Kind: ir.KindStore, Resource: "dma", Cycles: 2},
		},
		Default: &config.OperatorSpec{Resource: "alu", Cycles: 1},
	}
	b, err := target.New(context.Background(), spec, registry.New())
	require.NoError(t, err)
	return b
}

// kinds flattens a node slice into kind tags, for order assertions.
func kinds(nodes []*ir.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind
	}
	return out
}

// names flattens a node slice into instance names.
func names(nodes []*ir.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}
