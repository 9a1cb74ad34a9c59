package ops

import (
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/state"
	"github.com/wke/ogpm/symbol"
)

// Func computes an operator's result node from its already-evaluated
// argument nodes, adding the result as a fresh value node in sg (spec.md
// §4.6, "Op(la, args): invoke the operator table entry").
type Func func(sg *state.Graph, args []layout.Node) (layout.Node, error)

// Def is one Operator Table entry (spec.md §6): its declared parameter
// types and result type (consulted by typecheck), plus the function
// that performs the operation at evaluation time.
//
// Grounded on op.py's OpDef namedtuple.
type Def struct {
	Op       symbol.Label
	ParTypes []lattice.Type
	ResType  *lattice.Class
	Invoke   Func
}

// Table is the Operator Table, scoped to the lattice.Registry whose
// distinguished value classes its entries reference (spec.md §5: never
// a package-level global).
type Table struct {
	defs map[symbol.Label]Def
}

// Get returns the Def registered for op, or ErrUnknownOp.
func (t *Table) Get(op symbol.Label) (Def, error) {
	d, ok := t.defs[op]
	if !ok {
		return Def{}, ErrUnknownOp
	}
	return d, nil
}

// Invoke dispatches op against args via its registered Func (spec.md
// §4.6's Op expression rule; grounded on op.py's invoke_op).
func (t *Table) Invoke(sg *state.Graph, op symbol.Label, args []layout.Node) (layout.Node, error) {
	d, err := t.Get(op)
	if err != nil {
		return layout.Node{}, err
	}
	if len(args) != len(d.ParTypes) {
		return layout.Node{}, ErrArgCount
	}
	return d.Invoke(sg, args)
}

func valueOf[T any](sg *state.Graph, n layout.Node) (T, error) {
	var zero T
	v, ok := sg.ValueOf(n)
	if !ok {
		return zero, ErrNotValue
	}
	t, ok := v.Payload.(T)
	if !ok {
		return zero, ErrNotValue
	}
	return t, nil
}

func binary[T any](resType *lattice.Class, f func(a, b T) T) Func {
	return func(sg *state.Graph, args []layout.Node) (layout.Node, error) {
		a, err := valueOf[T](sg, args[0])
		if err != nil {
			return layout.Node{}, err
		}
		b, err := valueOf[T](sg, args[1])
		if err != nil {
			return layout.Node{}, err
		}
		return sg.AddValue(lattice.NewValue(resType, f(a, b))), nil
	}
}

func unary[T any](resType *lattice.Class, f func(a T) T) Func {
	return func(sg *state.Graph, args []layout.Node) (layout.Node, error) {
		a, err := valueOf[T](sg, args[0])
		if err != nil {
			return layout.Node{}, err
		}
		return sg.AddValue(lattice.NewValue(resType, f(a))), nil
	}
}

// binaryRel builds a comparison operator: two T-valued arguments produce
// a BOOL_TYPE result (spec.md §6's integer/string comparison entries).
func binaryRel[T any](reg *lattice.Registry, f func(a, b T) bool) Func {
	return func(sg *state.Graph, args []layout.Node) (layout.Node, error) {
		a, err := valueOf[T](sg, args[0])
		if err != nil {
			return layout.Node{}, err
		}
		b, err := valueOf[T](sg, args[1])
		if err != nil {
			return layout.Node{}, err
		}
		return sg.AddValue(lattice.NewValue(reg.BoolType, f(a, b))), nil
	}
}
