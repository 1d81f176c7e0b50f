package sched

import (
	"github.com/vk/dlacgo/internal/ir"
	"github.com/vk/dlacgo/internal/target"
)

// occupant is a node currently holding one unit of an execution resource.
// remaining is strictly positive while seated.
type occupant struct {
	node      *ir.Node
	remaining int
}

// occupancy tracks the occupants of every execution resource, keyed by
// resource identity.
type occupancy struct {
	backend *target.Backend
	users   map[*target.ExecResource][]occupant
}

func newOccupancy(backend *target.Backend) *occupancy {
	return &occupancy{
		backend: backend,
		users:   make(map[*target.ExecResource][]occupant),
	}
}

// available reports whether res has a free unit, lazily initializing the
// occupant list on first reference.
func (o *occupancy) available(res *target.ExecResource) bool {
	users, ok := o.users[res]
	if !ok {
		o.users[res] = nil
	}
	return len(users) < res.Units
}

// occupy seats n on one unit of res for its full cycle cost. Callers must
// confirm availability immediately before each call; occupy does not
// re-check capacity.
func (o *occupancy) occupy(res *target.ExecResource, n *ir.Node) {
	o.users[res] = append(o.users[res], occupant{
		node:      n,
		remaining: o.backend.CycleCost(n),
	})
}

// empty reports whether no resource has any occupant.
func (o *occupancy) empty() bool {
	for _, users := range o.users {
		if len(users) > 0 {
			return false
		}
	}
	return true
}

// advance moves virtual time forward to the next release event: it finds
// the minimum remaining cycle count across all occupants, subtracts it
// from everyone, and releases occupants that reach zero. It returns the
// elapsed cycle count. Calling advance on an empty tracker is a bug in
// the caller.
func (o *occupancy) advance() int {
	if o.empty() {
		panic("sched: advance on empty occupancy tracker")
	}

	min := 0
	for _, users := range o.users {
		for _, u := range users {
			if min == 0 || u.remaining < min {
				min = u.remaining
			}
		}
	}

	for res, users := range o.users {
		kept := users[:0]
		for _, u := range users {
			u.remaining -= min
			if u.remaining > 0 {
				kept = append(kept, u)
			}
		}
		o.users[res] = kept
	}
	return min
}
