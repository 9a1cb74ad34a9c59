package match

import "github.com/wke/ogpm/diag"

// ErrorKind classifies a Error.
type ErrorKind uint8

const (
	// Mismatch: Match could not embed the pattern graph into the value
	// graph as a subtype-respecting bijection.
	Mismatch ErrorKind = iota
	// NoUnion: Union could not collapse two conjunct patterns' node
	// identities onto a single destination without conflict.
	NoUnion
	// NoConj: MatchConj unified two conjunct patterns onto the same
	// position but their declared types share no common subtype.
	NoConj
)

func (k ErrorKind) String() string {
	switch k {
	case Mismatch:
		return "pattern does not match"
	case NoUnion:
		return "conjunct patterns cannot be unified"
	case NoConj:
		return "conjunct patterns have incompatible types"
	default:
		return "unknown match error"
	}
}

// Error reports a failure constructing or applying a pattern-graph
// embedding (spec.md §4.4).
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	return e.Kind.String()
}

// Code returns the stable diag.Code identifying e's kind (spec.md
// §10.1).
func (e *Error) Code() diag.Code {
	switch e.Kind {
	case Mismatch:
		return diag.E_PATTERN_MISMATCH
	case NoUnion:
		return diag.E_PATTERN_NO_UNION
	case NoConj:
		return diag.E_PATTERN_NO_CONJ
	default:
		return diag.E_INTERNAL
	}
}

// Issue renders e as a diag.Issue at Error severity.
func (e *Error) Issue() diag.Issue {
	return diag.NewIssue(diag.Error, e.Code(), e.Error()).Build()
}
