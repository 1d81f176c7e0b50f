package target

import (
	"context"
	"fmt"

	"github.com/vk/dlacgo/internal/config"
	"github.com/vk/dlacgo/internal/ctxlog"
	"github.com/vk/dlacgo/internal/ir"
	"github.com/vk/dlacgo/internal/registry"
)

// ExecResource is a named execution resource class with a fixed number of
// units. Identity is the pointer; the scheduler never copies these.
type ExecResource struct {
	Name  string
	Units int
}

// costEntry is one resolved (resource, cycles) pair for an operator kind.
type costEntry struct {
	res    *ExecResource
	cycles int
}

// Backend is the cost/resource oracle for one target accelerator.
type Backend struct {
	name      string
	resources map[string]*ExecResource
	table     map[string]costEntry
	def       costEntry
}

// New builds a backend from a target description. Operator kinds the
// description does not mention fall back to the registry's built-in
// descriptors, and beyond that to the description's default_operator
// entry. A description with no usable default is rejected so the oracle
// is total over node kinds.
func New(ctx context.Context, spec *config.TargetSpec, reg *registry.Registry) (*Backend, error) {
	logger := ctxlog.FromContext(ctx)

	if spec == nil {
		return nil, fmt.Errorf("no target description")
	}
	if len(spec.Resources) == 0 {
		return nil, fmt.Errorf("target %q declares no execution resources", spec.Name)
	}

	b := &Backend{
		name:      spec.Name,
		resources: make(map[string]*ExecResource),
		table:     make(map[string]costEntry),
	}
	for _, r := range spec.Resources {
		if r.Units <= 0 {
			return nil, fmt.Errorf("target %q: resource %q must have at least one unit", spec.Name, r.Name)
		}
		if _, dup := b.resources[r.Name]; dup {
			return nil, fmt.Errorf("target %q: duplicate resource %q", spec.Name, r.Name)
		}
		b.resources[r.Name] = &ExecResource{Name: r.Name, Units: r.Units}
	}

	for _, op := range spec.Operators {
		entry, err := b.resolve(spec.Name, op)
		if err != nil {
			return nil, err
		}
		if _, dup := b.table[op.Kind]; dup {
			return nil, fmt.Errorf("target %q: duplicate operator entry %q", spec.Name, op.Kind)
		}
		b.table[op.Kind] = entry
	}

	switch {
	case spec.Default != nil:
		entry, err := b.resolve(spec.Name, spec.Default)
		if err != nil {
			return nil, err
		}
		b.def = entry
	case b.resources[registry.ResourceALU] != nil:
		b.def = costEntry{res: b.resources[registry.ResourceALU], cycles: 1}
		logger.Debug("Backend: no default_operator, falling back to single-cycle alu.",
			"target", spec.Name)
	default:
		return nil, fmt.Errorf("target %q needs a default_operator entry", spec.Name)
	}

	// Built-in descriptors fill the gaps where their resource class exists
	// on this target.
	registered := 0
	for _, op := range reg.Operators() {
		if _, explicit := b.table[op.Kind]; explicit {
			continue
		}
		if res, ok := b.resources[op.Resource]; ok {
			b.table[op.Kind] = costEntry{res: res, cycles: op.Cycles}
			registered++
		}
	}
	logger.Debug("Backend: operator table built.",
		"target", spec.Name, "explicit", len(spec.Operators), "builtin", registered)

	return b, nil
}

func (b *Backend) resolve(targetName string, op *config.OperatorSpec) (costEntry, error) {
	res, ok := b.resources[op.Resource]
	if !ok {
		return costEntry{}, fmt.Errorf("target %q: operator %q references unknown resource %q",
			targetName, op.Kind, op.Resource)
	}
	if op.Cycles <= 0 {
		return costEntry{}, fmt.Errorf("target %q: operator %q must cost at least one cycle",
			targetName, op.Kind)
	}
	return costEntry{res: res, cycles: op.Cycles}, nil
}

// Name returns the target's name from the description file.
func (b *Backend) Name() string {
	return b.name
}

// Resource returns the named resource class, or nil.
func (b *Backend) Resource(name string) *ExecResource {
	return b.resources[name]
}

// ResourceOf returns the execution resource class the node requires.
func (b *Backend) ResourceOf(n *ir.Node) *ExecResource {
	if entry, ok := b.table[n.Kind]; ok {
		return entry.res
	}
	return b.def.res
}

// CycleCost returns the node's cycle cost on its resource class. Always
// positive.
func (b *Backend) CycleCost(n *ir.Node) int {
	if entry, ok := b.table[n.Kind]; ok {
		return entry.cycles
	}
	return b.def.cycles
}
