package typecheck

import (
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/ops"
)

// Checker holds the lattice.Registry and ops.Table a program's types and
// operator invocations are checked against, plus the layout.NodeFactory
// shared with match.Union/match.Inter when reconciling conjunct/disjunct
// patterns (spec.md §5: no package-level globals).
type Checker struct {
	reg     *lattice.Registry
	table   *ops.Table
	factory *layout.NodeFactory
}

// New builds a Checker.
func New(reg *lattice.Registry, table *ops.Table, factory *layout.NodeFactory) *Checker {
	return &Checker{reg: reg, table: table, factory: factory}
}

func typesEqual(a, b lattice.Type) bool {
	switch av := a.(type) {
	case *lattice.Class:
		bv, ok := b.(*lattice.Class)
		return ok && av.Equal(bv)
	case *lattice.ValueSet:
		bv, ok := b.(*lattice.ValueSet)
		return ok && av.Equal(bv)
	default:
		return false
	}
}

func isClass(t lattice.Type, want *lattice.Class) bool {
	cl, ok := t.(*lattice.Class)
	return ok && cl == want
}
