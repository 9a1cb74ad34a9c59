package patternast

import (
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/symbol"
)

// Pattern is the closed interface implemented by every pattern surface
// form (spec.md §4.3 / §9, "model as tagged variants, dispatched at the
// entry of each walker"). Callers type-switch on the concrete type
// rather than branching on a string tag.
type Pattern interface {
	isPattern()
}

func (*ClassPattern) isPattern()  {}
func (*LabeledPattern) isPattern() {}
func (*PatternRef) isPattern()    {}
func (*ValueSetPattern) isPattern() {}
func (*PatternConj) isPattern()   {}
func (*PatternDisj) isPattern()   {}

// ClassPattern is a node typed Class with specified attribute
// sub-patterns (spec.md §4.3, "ClassPattern(C, {l -> sub})").
// Attributes absent from Attrs are left unconstrained.
type ClassPattern struct {
	Class *lattice.Class
	Attrs map[symbol.Label]Pattern
}

// LabeledPattern names the node constructed for Base; the name becomes
// a binding visible in the enclosing case body and may be referenced
// elsewhere in the same pattern via PatternRef (spec.md §4.3).
type LabeledPattern struct {
	Name symbol.Label
	Base Pattern
}

// PatternRef is a use site referencing a name bound by a LabeledPattern
// elsewhere in the same pattern, possibly before that LabeledPattern has
// been walked (a forward/back reference, spec.md §4.3 / §9).
type PatternRef struct {
	Name symbol.Label
}

// ValueSetPattern is a leaf pattern contributing a ValueSet type
// (spec.md §4.3, "A ValueSet contributes a leaf with type = that
// ValueSet").
type ValueSetPattern struct {
	Set *lattice.ValueSet
}

// PatternConj is a conjunction of pattern alternatives: all must match
// the same subgraph, with references reconciled via union construction
// (spec.md §4.4.2).
type PatternConj struct {
	Patterns []Pattern
}

// PatternDisj is a disjunction of pattern alternatives: the first to
// match wins, with references reconciled via intersection construction
// (spec.md §4.4.3).
type PatternDisj struct {
	Patterns []Pattern
}
