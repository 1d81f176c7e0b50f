package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/dlacgo/internal/ir"
	"github.com/vk/dlacgo/internal/target"
)

func TestAvailable(t *testing.T) {
	o := newOccupancy(nil)
	res := &target.ExecResource{Name: "mac", Units: 2}

	// First reference lazily initializes the occupant list.
	assert.True(t, o.available(res))
	_, tracked := o.users[res]
	assert.True(t, tracked)

	o.users[res] = []occupant{{node: &ir.Node{Kind: "Conv"}, remaining: 4}}
	assert.True(t, o.available(res))

	o.users[res] = append(o.users[res], occupant{node: &ir.Node{Kind: "Conv"}, remaining: 2})
	assert.False(t, o.available(res))
}

func TestOccupyUsesCycleCost(t *testing.T) {
	b := testBackend(t)
	o := newOccupancy(b)
	res := b.Resource("mac")

	conv := &ir.Node{Kind: "Conv"}
	require.True(t, o.available(res))
	o.occupy(res, conv)

	require.Len(t, o.users[res], 1)
	assert.Same(t, conv, o.users[res][0].node)
	assert.Equal(t, 4, o.users[res][0].remaining)
	assert.False(t, o.available(res))
}

func TestAdvance(t *testing.T) {
	o := newOccupancy(nil)
	mac := &target.ExecResource{Name: "mac", Units: 2}
	alu := &target.ExecResource{Name: "alu", Units: 2}

	o.users[mac] = []occupant{
		{node: &ir.Node{Name: "n5"}, remaining: 5},
		{node: &ir.Node{Name: "n3a"}, remaining: 3},
	}
	o.users[alu] = []occupant{
		{node: &ir.Node{Name: "n3b"}, remaining: 3},
		{node: &ir.Node{Name: "n8"}, remaining: 8},
	}

	elapsed := o.advance()
	assert.Equal(t, 3, elapsed)

	// The two occupants that hit zero were released; the rest aged.
	require.Len(t, o.users[mac], 1)
	assert.Equal(t, "n5", o.users[mac][0].node.Name)
	assert.Equal(t, 2, o.users[mac][0].remaining)

	require.Len(t, o.users[alu], 1)
	assert.Equal(t, "n8", o.users[alu][0].node.Name)
	assert.Equal(t, 5, o.users[alu][0].remaining)

	// Draining the rest takes two more release events.
	assert.Equal(t, 2, o.advance())
	assert.Equal(t, 3, o.advance())
	assert.True(t, o.empty())
}

func TestAdvanceOnEmptyPanics(t *testing.T) {
	o := newOccupancy(nil)
	assert.Panics(t, func() { o.advance() })
}

func TestEmpty(t *testing.T) {
	o := newOccupancy(nil)
	assert.True(t, o.empty())

	res := &target.ExecResource{Name: "mac", Units: 1}
	assert.True(t, o.available(res)) // lazy init must not flip emptiness
	assert.True(t, o.empty())

	o.users[res] = []occupant{{node: &ir.Node{}, remaining: 1}}
	assert.False(t, o.empty())
}
