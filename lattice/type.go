package lattice

import (
	"github.com/wke/ogpm/diag"
	"github.com/wke/ogpm/symbol"
)

// Type is the interface shared by *Class and *ValueSet: anything that can
// annotate a pattern-graph or state-graph node (spec.md §3, "Pattern
// Graph" / "State Graph").
//
// Type is a closed interface: only *Class, *ValueSet and *LazyTag
// implement it, the last as a placeholder attribute type that
// Class.ResolveLazy replaces.
// Callers type-switch on the concrete type, matching the teacher's
// convention of small closed sum types dispatched by type-switch rather
// than string tags (spec.md §9, "Polymorphism").
type Type interface {
	isLatticeType()
}

func (*Class) isLatticeType()    {}
func (*ValueSet) isLatticeType() {}

// ErrorKind classifies a LatticeError, mirroring the teacher's
// schema.RegistryError.Kind / schema.RelationErrorKind pattern of a
// closed enum carried on a single error struct instead of one exported
// error variable per failure mode.
type ErrorKind uint8

const (
	// DuplicateClass: a named class registered under a Tag already in use.
	DuplicateClass ErrorKind = iota
	// UndefinedClass: Registry.Get found no class for the given Tag.
	UndefinedClass
	// AttrTypeConflict: a subclass redeclares an inherited attribute with
	// a different attribute type than its supertype.
	AttrTypeConflict
	// MinType: neither operand of MinType is a subtype of the other.
	MinType
)

// String returns a human-readable label for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case DuplicateClass:
		return "duplicate class"
	case UndefinedClass:
		return "undefined class"
	case AttrTypeConflict:
		return "attribute type conflict"
	case MinType:
		return "no common subtype"
	default:
		return "unknown lattice error"
	}
}

// LatticeError reports a structural failure in the type lattice (spec.md
// §7, "Structural/static" taxonomy: DuplicateClass, UndefinedClass,
// AttrTypeConflict, MinType).
type LatticeError struct {
	Kind    ErrorKind
	Tag     symbol.Tag
	Label   symbol.Label
	Message string
}

func (e *LatticeError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.String()
}

// Code returns the stable diag.Code identifying e's kind (spec.md
// §10.1).
func (e *LatticeError) Code() diag.Code {
	switch e.Kind {
	case DuplicateClass:
		return diag.E_DUPLICATE_CLASS
	case UndefinedClass:
		return diag.E_UNDEFINED_CLASS
	case AttrTypeConflict:
		return diag.E_ATTR_TYPE_CONFLICT
	case MinType:
		return diag.E_NO_COMMON_SUBTYPE
	default:
		return diag.E_INTERNAL
	}
}

// Issue renders e as a diag.Issue at Error severity.
func (e *LatticeError) Issue() diag.Issue {
	return diag.NewIssue(diag.Error, e.Code(), e.Error()).Build()
}
