package registry

import (
	"fmt"
	"sort"

	"github.com/vk/dlacgo/internal/kernels"
)

// Operator describes one operator kind's default placement and cost, plus
// its host kernel where the operator is plain elementwise math.
type Operator struct {
	// Kind is the operator kind tag, e.g. "Conv".
	Kind string
	// Resource names the execution resource class the operator runs on.
	Resource string
	// Cycles is the default cycle cost on that resource. Always positive.
	Cycles int

	// Unary and Binary are the host kernels; at most one is set, and both
	// are nil for operators that are not elementwise.
	Unary  kernels.Unary
	Binary kernels.Binary
}

// Registry holds the registered operator descriptors for one application
// instance.
type Registry struct {
	operators map[string]*Operator
}

// New creates a registry pre-populated with the built-in operator set.
func New() *Registry {
	r := &Registry{operators: make(map[string]*Operator)}
	for _, op := range builtins {
		r.MustRegister(op)
	}
	return r
}

// Register adds an operator descriptor. Registering the same kind twice or
// a non-positive cycle cost is a programmer error.
func (r *Registry) Register(op *Operator) error {
	if op.Kind == "" {
		return fmt.Errorf("operator kind must not be empty")
	}
	if op.Cycles <= 0 {
		return fmt.Errorf("operator %q: cycle cost must be positive, got %d", op.Kind, op.Cycles)
	}
	if _, exists := r.operators[op.Kind]; exists {
		return fmt.Errorf("operator %q registered twice", op.Kind)
	}
	r.operators[op.Kind] = op
	return nil
}

// MustRegister is Register for static descriptor tables; it panics on error.
func (r *Registry) MustRegister(op *Operator) {
	if err := r.Register(op); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor for the given kind, or nil if none is
// registered.
func (r *Registry) Lookup(kind string) *Operator {
	return r.operators[kind]
}

// Operators returns all registered descriptors sorted by kind, so callers
// iterating the set behave deterministically.
func (r *Registry) Operators() []*Operator {
	kinds := make([]string, 0, len(r.operators))
	for kind := range r.operators {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	ops := make([]*Operator, len(kinds))
	for i, kind := range kinds {
		ops[i] = r.operators[kind]
	}
	return ops
}
