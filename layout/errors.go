package layout

import (
	"errors"
	"fmt"
)

// Error sentinels for internal layout-graph failures: programmer errors
// or structural invariant violations, never user-facing content
// diagnostics (those live one layer up, in diag.Issue).
var (
	// ErrInternal is the base error for internal layout failures.
	ErrInternal = errors.New("internal layout failure")

	// ErrNilGraph indicates a method was called on a nil *Graph receiver.
	ErrNilGraph = fmt.Errorf("%w: nil *Graph receiver", ErrInternal)

	// ErrUnknownNode indicates an operation referenced a Node outside the
	// graph's node set.
	ErrUnknownNode = fmt.Errorf("%w: node not present in graph", ErrInternal)

	// ErrUnknownLabel indicates find/extract addressed a label with no
	// outgoing edge from the given node.
	ErrUnknownLabel = fmt.Errorf("%w: label has no outgoing edge", ErrInternal)
)
