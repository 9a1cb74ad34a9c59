package eval

import (
	"errors"

	"github.com/wke/ogpm/bidict"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/match"
	"github.com/wke/ogpm/patternast"
	"github.com/wke/ogpm/symbol"
	"github.com/wke/ogpm/typecheck"
)

// matchPattern attempts to embed pattern1 (a Case's stored pattern
// graph) into pg (the scrutinee's extracted pattern-graph view),
// reporting (nil, false, nil) on an ordinary mismatch and (nil, false,
// err) only if match.Match failed for a reason other than mismatch.
//
// Grounded on st.py's match_patterns.
func matchPattern(pattern1, pg *patternast.Graph) (*bidict.Bidict[layout.Node, layout.Node], bool, error) {
	f, err := match.Match(pattern1, pg, lattice.Subtype)
	if err != nil {
		var mErr *match.Error
		if errors.As(err, &mErr) && mErr.Kind == match.Mismatch {
			return nil, false, nil
		}
		return nil, false, err
	}
	return f, true, nil
}

// matchOne tries a single (non-conjunct, non-disjunct) Case pattern
// against pg, returning the label bindings the case brings into its body
// if it matches.
//
// Grounded on st.py's match_one.
func matchOne(pg *patternast.Graph, extra *typecheck.SingleExtra) (map[symbol.Label]layout.Node, bool, error) {
	f, ok, err := matchPattern(extra.Pattern, pg)
	if err != nil || !ok {
		return nil, ok, err
	}
	out := make(map[symbol.Label]layout.Node, len(extra.Refs))
	for la, q := range extra.Refs {
		v, _ := f.Get(q)
		out[la] = v
	}
	return out, true, nil
}

// matchConj requires every conjunct to match pg independently, then
// merges their per-conjunct bijections (each keyed by that conjunct's own
// pattern nodes, which never collide across conjuncts) before resolving
// every case reference through the merged bijection.
//
// Grounded on st.py's match_conj.
func matchConj(pg *patternast.Graph, extra *typecheck.ConjExtra) (map[symbol.Label]layout.Node, bool, error) {
	merged := bidict.New[layout.Node, layout.Node]()
	for _, pattern1 := range extra.Patterns {
		f, ok, err := matchPattern(pattern1, pg)
		if err != nil || !ok {
			return nil, ok, err
		}
		merged.Union(f)
	}

	out := map[symbol.Label]layout.Node{}
	for _, refs := range extra.Refs {
		for la, u := range refs {
			v, _ := merged.Get(u)
			out[la] = v
		}
	}
	return out, true, nil
}

// matchDisj tries each disjunct in turn; the first that matches wins.
// References declared in OTHER disjuncts are translated into the
// matched disjunct's own pattern-node space via the typecheck-time unify
// bidicts (extra.Unify) before being looked up in the matched bijection:
// for a reference whose home node is u, its canonical unified position
// is f1[u] (f1 the union of every disjunct's unify bidict); the set of
// nodes unified to that position that also belong to the matched
// disjunct's own pattern is exactly one node (the position's
// representative there), and that node is the key to look up in the
// matched bijection.
//
// Grounded on st.py's match_disj.
func matchDisj(pg *patternast.Graph, extra *typecheck.DisjExtra) (map[symbol.Label]layout.Node, bool, error) {
	f1 := bidict.New[layout.Node, layout.Node]()
	for _, u := range extra.Unify {
		f1.Union(u)
	}
	rm1 := map[symbol.Label]layout.Node{}
	for _, refs := range extra.Refs {
		for la, u := range refs {
			rm1[la] = u
		}
	}

	for _, pattern1 := range extra.Patterns {
		f, ok, err := matchPattern(pattern1, pg)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}

		out := map[symbol.Label]layout.Node{}
		for la, u := range rm1 {
			canon, ok := f1.Get(u)
			if !ok {
				return nil, false, errors.New("eval: disjunct reference has no unified position")
			}
			var chosen layout.Node
			found := false
			for _, cand := range f1.Inverse(canon) {
				if f.Contains(cand) {
					chosen, found = cand, true
					break
				}
			}
			if !found {
				return nil, false, errors.New("eval: no matched-disjunct node for reference")
			}
			v, _ := f.Get(chosen)
			out[la] = v
		}
		return out, true, nil
	}

	return nil, false, nil
}

// matchJunc dispatches a Case's junction to matchOne/matchConj/matchDisj
// based on its Extra payload's concrete type (grounded on st.py's
// match_junc, which dispatches on junc's type instead — equivalent here
// since typecheck.Case always stores the Extra shape matching its Junc).
func matchJunc(pg *patternast.Graph, extra any) (map[symbol.Label]layout.Node, bool, error) {
	switch e := extra.(type) {
	case *typecheck.SingleExtra:
		return matchOne(pg, e)
	case *typecheck.ConjExtra:
		return matchConj(pg, e)
	case *typecheck.DisjExtra:
		return matchDisj(pg, e)
	default:
		return nil, false, errors.New("eval: case has no type-checked pattern extra")
	}
}
