package match

import (
	"github.com/wke/ogpm/bidict"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/patternast"
)

// MatchConj unifies several conjunct pattern graphs via Union, then
// checks that every position the union collapses together has declared
// types with a common subtype across all the conjuncts that reach it,
// recording the lattice infimum of those types as the position's
// combined type (spec.md §4.4.2). A position whose conjunct types share
// no common subtype fails with a NoConj Error.
//
// Grounded on graph.py's cons_match_conj.
func MatchConj(factory *layout.NodeFactory, patterns []*patternast.Graph) ([]*bidict.Bidict[layout.Node, layout.Node], map[layout.Node]lattice.Type, error) {
	fs, err := Union(factory, patterns)
	if err != nil {
		return nil, nil, err
	}

	dest := destinationsOf(fs)
	types := make(map[layout.Node]lattice.Type, len(dest))
	for ud := range dest {
		var ts []lattice.Type
		for i, f := range fs {
			if !f.ContainsValue(ud) {
				continue
			}
			k, err := f.UniqueInverse(ud)
			if err != nil {
				return nil, nil, err
			}
			ts = append(ts, patterns[i].TypeOf(k))
		}
		if !lattice.ExistsTyLeAll(ts) {
			return nil, nil, &Error{Kind: NoConj}
		}
		td, err := lattice.TyInf(ts)
		if err != nil {
			return nil, nil, err
		}
		types[ud] = td
	}
	return fs, types, nil
}

// MatchDisj unifies several disjunct pattern graphs via Inter, then
// records the lattice supremum of the declared types every disjunct
// contributes at each collapsed position (spec.md §4.4.3). Disjunction
// never fails structurally — every position is reachable by at least
// one disjunct, by construction.
//
// Grounded on graph.py's cons_match_disj.
func MatchDisj(factory *layout.NodeFactory, patterns []*patternast.Graph) ([]*bidict.Bidict[layout.Node, layout.Node], map[layout.Node]lattice.Type, error) {
	fs, err := Inter(factory, patterns)
	if err != nil {
		return nil, nil, err
	}

	dest := destinationsOf(fs)
	types := make(map[layout.Node]lattice.Type, len(dest))
	for uc := range dest {
		var ts []lattice.Type
		for i, f := range fs {
			for _, u := range f.Inverse(uc) {
				ts = append(ts, patterns[i].TypeOf(u))
			}
		}
		tc, err := lattice.TySup(ts)
		if err != nil {
			return nil, nil, err
		}
		types[uc] = tc
	}
	return fs, types, nil
}

func destinationsOf(fs []*bidict.Bidict[layout.Node, layout.Node]) map[layout.Node]struct{} {
	dest := map[layout.Node]struct{}{}
	for _, f := range fs {
		for _, v := range f.Entries() {
			dest[v] = struct{}{}
		}
	}
	return dest
}
