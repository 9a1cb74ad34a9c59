package lattice

import "github.com/wke/ogpm/symbol"

// Registry owns the set of named classes for a single interpreter run
// (spec.md §5, "the class registry... scoped to an interpreter instance
// to avoid global state; a reset hook must be provided"). Grounded on
// subtype.py's module-level CLA_TAB, deliberately NOT reproduced as a Go
// package-level variable: two Registries never observe each other's
// classes, matching the teacher's schema.Registry being an explicitly
// constructed value (schema.NewRegistry()) rather than package state.
type Registry struct {
	byTag map[symbol.Tag]*Class

	// NoType is the universal top: every class is a subtype of NoType's
	// supertype direction is inverted from NullType — NoType carries an
	// empty ancestor-tag set, so (*Class).LE against it is vacuously true
	// for any operand (spec.md §3, distinguished class "NO_TYPE").
	NoType *Class
	// NullType is the universal bottom (spec.md §3, "NULL_TYPE"):
	// Subtype(NullType, y) is true for every y.
	NullType *Class
	// IntType, StrType, BoolType are the three primitive value classes
	// a ValueSet's members are drawn from (spec.md §3, "VALUE_TYPES").
	IntType, StrType, BoolType *Class
}

// NewRegistry constructs a Registry with its five distinguished classes
// already installed, the same baseline subtype.py's module import
// establishes before any user class is defined.
func NewRegistry() *Registry {
	r := &Registry{byTag: make(map[symbol.Tag]*Class)}
	r.installWellKnown()
	return r
}

func (r *Registry) installWellKnown() {
	noType, err := NewClass(r, symbol.NewTag("*TOP"), nil, nil)
	if err != nil {
		panic("lattice: failed to install NoType: " + err.Error())
	}
	r.NoType = noType

	nullType, err := NewClass(r, symbol.NewTag("*NULL"), nil, nil)
	if err != nil {
		panic("lattice: failed to install NullType: " + err.Error())
	}
	nullType.null = true
	r.NullType = nullType

	intType, err := NewClass(r, symbol.NewTag("Int"), nil, nil)
	if err != nil {
		panic("lattice: failed to install IntType: " + err.Error())
	}
	intType.value = true
	r.IntType = intType

	strType, err := NewClass(r, symbol.NewTag("Str"), nil, nil)
	if err != nil {
		panic("lattice: failed to install StrType: " + err.Error())
	}
	strType.value = true
	r.StrType = strType

	boolType, err := NewClass(r, symbol.NewTag("Bool"), nil, nil)
	if err != nil {
		panic("lattice: failed to install BoolType: " + err.Error())
	}
	boolType.value = true
	r.BoolType = boolType
}

// Register defines cla under its own tag. DuplicateClass if the tag is
// already registered (including registrations performed internally by
// NewClass — Register exists for callers building classes incrementally
// via newRawClass-style construction outside this package, e.g. tests).
func (r *Registry) Register(cla *Class) error {
	if cla.tag.IsZero() {
		return &LatticeError{Kind: DuplicateClass, Message: "lattice: cannot register an anonymous class"}
	}
	if _, ok := r.byTag[cla.tag]; ok {
		return &LatticeError{Kind: DuplicateClass, Tag: cla.tag}
	}
	r.byTag[cla.tag] = cla
	return nil
}

// Get returns the class registered under tag, or UndefinedClass if none
// is (spec.md §4.1, "Cla.get").
func (r *Registry) Get(tag symbol.Tag) (*Class, error) {
	cla, ok := r.byTag[tag]
	if !ok {
		return nil, &LatticeError{Kind: UndefinedClass, Tag: tag}
	}
	return cla, nil
}

// IsValueType reports whether t is one of the registry's three
// primitive value classes (spec.md §3, "VALUE_TYPES").
func (r *Registry) IsValueType(t Type) bool {
	cla, ok := t.(*Class)
	return ok && cla.IsValueType()
}

// Reset discards every registered class, including user classes, and
// reinstalls the five distinguished classes (spec.md §5, "a reset hook
// must be provided" — grounded on subtype.py's `Cla.reset`, which lets
// the original's test suite run multiple independent scenarios against
// one process without named-class collisions across scenarios).
func (r *Registry) Reset() {
	r.byTag = make(map[symbol.Tag]*Class)
	r.installWellKnown()
}
