package state

import "github.com/wke/ogpm/symbol"

// ErrorKind classifies a Error (spec.md §7, structural/dynamic taxonomy
// entries NoScope / UndefVar / UndefAttr that the state graph itself can
// raise).
type ErrorKind uint8

const (
	// NoScope: pop was attempted on a frame with no scope-link edge.
	NoScope ErrorKind = iota
	// UndefVar: find variable walked off the outermost frame without
	// finding the label.
	UndefVar
	// UndefAttr: find attribute addressed a label absent from the node.
	UndefAttr
)

func (k ErrorKind) String() string {
	switch k {
	case NoScope:
		return "no enclosing scope"
	case UndefVar:
		return "undefined variable"
	case UndefAttr:
		return "undefined attribute"
	default:
		return "unknown state graph error"
	}
}

// Error reports a scope-chain or attribute-lookup failure (spec.md §4.2).
// Per spec.md §7, UndefVar/NoScope are dynamic errors the type checker is
// specified to make unreachable — surfacing one at runtime indicates an
// interpreter bug, not a user-facing content problem, so Error is a plain
// Go error rather than a diag.Issue.
type Error struct {
	Kind  ErrorKind
	Label symbol.Label
}

func (e *Error) Error() string {
	if e.Label.IsZero() {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Label.String()
}
