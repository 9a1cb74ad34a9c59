package ops

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal is the base error for internal operator-table failures.
	ErrInternal = errors.New("internal operator failure")

	// ErrUnknownOp indicates Table.Get/Invoke addressed a label with no
	// registered OpDef.
	ErrUnknownOp = fmt.Errorf("%w: operator not registered", ErrInternal)

	// ErrArgCount indicates Invoke was called with a number of arguments
	// other than len(OpDef.ParTypes).
	ErrArgCount = fmt.Errorf("%w: argument count does not match operator arity", ErrInternal)

	// ErrNotValue indicates an operator argument node carries no
	// lattice.Value (the type checker is specified to make this
	// unreachable; surfacing it signals an interpreter bug).
	ErrNotValue = fmt.Errorf("%w: argument node is not a value node", ErrInternal)
)
