package patternast

import (
	"github.com/wke/ogpm/diag"
	"github.com/wke/ogpm/symbol"
)

// ErrorKind classifies a BuildError (spec.md §7, structural taxonomy
// entries RedefRef / UndefRef).
type ErrorKind uint8

const (
	// RedefRef: a LabeledPattern rebinds a name whose reference has
	// already been resolved earlier in the same pattern.
	RedefRef ErrorKind = iota
	// UndefRef: after construction, a name in the reference map was
	// never resolved by a LabeledPattern — a PatternRef with no
	// corresponding binding anywhere in the pattern.
	UndefRef
	// UnsupportedNesting: a PatternConj/PatternDisj appeared where only
	// a single pattern alternative is structurally valid (as a
	// ClassPattern attribute sub-pattern).
	UnsupportedNesting
)

func (k ErrorKind) String() string {
	switch k {
	case RedefRef:
		return "redefinition of resolved pattern reference"
	case UndefRef:
		return "undefined pattern reference"
	case UnsupportedNesting:
		return "conjunction/disjunction not valid as a nested sub-pattern"
	default:
		return "unknown pattern build error"
	}
}

// BuildError reports a structural failure while constructing a pattern
// graph (spec.md §4.3).
type BuildError struct {
	Kind ErrorKind
	Name symbol.Label
}

func (e *BuildError) Error() string {
	if e.Name.IsZero() {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Name.String()
}

// Code returns the stable diag.Code identifying e's kind (spec.md
// §10.1).
func (e *BuildError) Code() diag.Code {
	switch e.Kind {
	case RedefRef:
		return diag.E_PATTERN_REDEF_REF
	case UndefRef:
		return diag.E_PATTERN_UNDEF_REF
	case UnsupportedNesting:
		return diag.E_PATTERN_UNSUPPORTED_NESTING
	default:
		return diag.E_INTERNAL
	}
}

// Issue renders e as a diag.Issue at Error severity.
func (e *BuildError) Issue() diag.Issue {
	return diag.NewIssue(diag.Error, e.Code(), e.Error()).Build()
}
