package lattice

import "github.com/wke/ogpm/symbol"

// Subtype reports whether x <= y under the subtype relation extended
// with ValueSet refinement types (spec.md §3, "Subtype rule"):
//
//   - NullType is the universal bottom: it is a subtype of everything.
//   - Class <= Class delegates to (*Class).LE (ancestor-tag superset).
//   - ValueSet <= ValueSet iff x is a subset of y.
//   - ValueSet <= Class iff every member of x shares class y.
//   - Any other pairing (Class <= ValueSet) is never a subtype.
func Subtype(x, y Type) bool {
	if xc, ok := x.(*Class); ok && xc.IsNullType() {
		return true
	}
	switch xv := x.(type) {
	case *Class:
		yv, ok := y.(*Class)
		return ok && xv.LE(yv)
	case *ValueSet:
		switch yv := y.(type) {
		case *ValueSet:
			return xv.Subset(yv)
		case *Class:
			for v := range xv.members {
				if v.Class != yv {
					return false
				}
			}
			return true
		}
	}
	return false
}

// MinType returns whichever of x, y is a subtype of the other (spec.md
// §4.1, "min_type"); MinTypeError (reported as a LatticeError with Kind
// MinType) if neither is.
func MinType(x, y Type) (Type, error) {
	if Subtype(x, y) {
		return x, nil
	}
	if Subtype(y, x) {
		return y, nil
	}
	return nil, &LatticeError{Kind: MinType, Message: "lattice: no common subtype"}
}

// ClassOf walks path through a Class's declared attribute types (or
// resolves a ValueSet's common member class when path is empty),
// returning nil if the path runs off the attribute schema or the
// ValueSet's members don't share one class (spec.md §4.1, "classof").
func ClassOf(t Type, path []symbol.Label) Type {
	if vs, ok := t.(*ValueSet); ok {
		if len(path) != 0 {
			return nil
		}
		cla := vs.CommonClass()
		if cla == nil {
			return nil
		}
		return cla
	}

	cur, ok := t.(*Class)
	if !ok {
		return nil
	}
	for _, la := range path {
		next, ok := cur.AttrType(la)
		if !ok {
			return nil
		}
		nextCla, ok := next.(*Class)
		if !ok {
			return nil
		}
		cur = nextCla
	}
	return cur
}

// ExistsTyLeAll reports whether some member of ts is a subtype of every
// member of ts (spec.md §4.1, used by the disjunction type-reconciliation
// check before calling TySup).
func ExistsTyLeAll(ts []Type) bool {
	for _, t := range ts {
		leAll := true
		for _, u := range ts {
			if !Subtype(t, u) {
				leAll = false
				break
			}
		}
		if leAll {
			return true
		}
	}
	return false
}

// TyInf computes the infimum (greatest lower bound) of ts: the union of
// their ValueSets if any are present, else the anonymous intersection
// class `Inter(ts)` (spec.md §4.1, "ty_inf", used by pattern conjunction
// to reconcile the types of unified reference nodes).
func TyInf(ts []Type) (Type, error) {
	if vs, ok := anyValueSet(ts); ok {
		return vs, nil
	}
	classes, err := asClasses(ts)
	if err != nil {
		return nil, err
	}
	return Inter(classes)
}

// TySup computes the supremum (least upper bound) of ts: the
// intersection of their ValueSets if any are present, else the
// anonymous union class `Union(ts)` (spec.md §4.1, "ty_sup", used by
// pattern disjunction to reconcile alternative branch types).
func TySup(ts []Type) (Type, error) {
	if vs, ok := anyValueSetIntersect(ts); ok {
		return vs, nil
	}
	classes, err := asClasses(ts)
	if err != nil {
		return nil, err
	}
	return Union(classes)
}

func anyValueSet(ts []Type) (*ValueSet, bool) {
	var acc *ValueSet
	found := false
	for _, t := range ts {
		vs, ok := t.(*ValueSet)
		if !ok {
			continue
		}
		found = true
		if acc == nil {
			acc = vs
			continue
		}
		acc = acc.Union(vs)
	}
	return acc, found
}

func anyValueSetIntersect(ts []Type) (*ValueSet, bool) {
	var acc *ValueSet
	found := false
	for _, t := range ts {
		vs, ok := t.(*ValueSet)
		if !ok {
			continue
		}
		found = true
		if acc == nil {
			acc = vs
			continue
		}
		acc = acc.Intersect(vs)
	}
	return acc, found
}

func asClasses(ts []Type) ([]*Class, error) {
	classes := make([]*Class, 0, len(ts))
	for _, t := range ts {
		cla, ok := t.(*Class)
		if !ok {
			return nil, &LatticeError{Kind: MinType, Message: "lattice: cannot reconcile a ValueSet against a bare Class set"}
		}
		classes = append(classes, cla)
	}
	return classes, nil
}
