package typecheck

import (
	"github.com/wke/ogpm/ast"
	"github.com/wke/ogpm/bidict"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/match"
	"github.com/wke/ogpm/patternast"
	"github.com/wke/ogpm/symbol"
)

// SingleExtra is the Extra payload typecheck stores for a Case whose
// junction is a single pattern (not a PatternConj/PatternDisj).
type SingleExtra struct {
	Pattern *patternast.Graph
	Refs    map[symbol.Label]layout.Node
}

// ConjExtra is the Extra payload for a PatternConj junction: the built
// graph and reference map of each conjunct, plus the bidict each
// conjunct's nodes were unified through (spec.md §4.4.2).
type ConjExtra struct {
	Patterns []*patternast.Graph
	Unify    []*bidict.Bidict[layout.Node, layout.Node]
	Refs     []map[symbol.Label]layout.Node
}

// DisjExtra is the Extra payload for a PatternDisj junction, shaped like
// ConjExtra but unified via match.Inter instead of match.Union (spec.md
// §4.4.3).
type DisjExtra struct {
	Patterns []*patternast.Graph
	Unify    []*bidict.Bidict[layout.Node, layout.Node]
	Refs     []map[symbol.Label]layout.Node
}

// tcNode verifies a pattern graph is internally well-typed: every node
// must carry a declared type, and every attribute it declares an edge
// for must target a node whose type is a subtype of that attribute's
// declared type. memo guards cycles (a node already visited returns its
// recorded type without re-descending).
//
// Grounded on tc.py's tc_node.
func (c *Checker) tcNode(p layout.Node, memo *Env[layout.Node, lattice.Type], pg *patternast.Graph) (lattice.Type, error) {
	if memo != nil {
		if t, ok := memo.Get(p); ok {
			return t, nil
		}
	}

	t := pg.TypeOf(p)
	if t == nil {
		return nil, &Error{Kind: NodeType}
	}
	memo2 := NewEnv(memo, map[layout.Node]lattice.Type{p: t})

	for _, la := range pg.Layout.Labels(p) {
		q, _ := pg.Layout.Edge(p, la)
		s, err := c.tcNode(q, memo2, pg)
		if err != nil {
			return nil, err
		}
		want := lattice.ClassOf(t, []symbol.Label{la})
		if !lattice.Subtype(s, want) {
			return nil, &Error{Kind: NodeSubtype}
		}
	}

	return t, nil
}

// Pattern builds junc's pattern graph and verifies it is well-typed,
// returning its root type, the type of every named reference, the built
// graph, and the reference map (spec.md §4.3 / §4.5).
//
// Grounded on tc.py's tc_pattern/tc_graph/tc_ref.
func (c *Checker) Pattern(junc patternast.Pattern) (lattice.Type, map[symbol.Label]lattice.Type, *patternast.Graph, map[symbol.Label]layout.Node, error) {
	pg, rm, err := patternast.Build(c.factory, junc)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	t, err := c.tcNode(pg.Layout.Root(), nil, pg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	rtm := make(map[symbol.Label]lattice.Type, len(rm))
	for la, n := range rm {
		rt, err := c.tcNode(n, nil, pg)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		rtm[la] = rt
	}
	return t, rtm, pg, rm, nil
}

// Conj type-checks a conjunction of patterns: each is checked
// independently, then match.MatchConj unifies their node identities and
// the lattice infimum reconciles the type of every position two or more
// conjuncts collapse together. A reference's type narrows to the
// infimum of its own declared type and its unified position's
// reconciled type (spec.md §4.4.2).
//
// Grounded on tc.py's tc_conj.
func (c *Checker) Conj(patterns []patternast.Pattern) (lattice.Type, []lattice.Type, map[symbol.Label]lattice.Type, *ConjExtra, error) {
	ts := make([]lattice.Type, len(patterns))
	rtms := make([]map[symbol.Label]lattice.Type, len(patterns))
	pgs := make([]*patternast.Graph, len(patterns))
	rms := make([]map[symbol.Label]layout.Node, len(patterns))

	for i, p := range patterns {
		t, rtm, pg, rm, err := c.Pattern(p)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		ts[i], rtms[i], pgs[i], rms[i] = t, rtm, pg, rm
	}

	fs, tsd, err := match.MatchConj(c.factory, pgs)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	rtm2 := map[symbol.Label]lattice.Type{}
	for i, rtm := range rtms {
		for la, s := range rtm {
			u, _ := fs[i].Get(rms[i][la])
			mt, err := lattice.MinType(s, tsd[u])
			if err != nil {
				return nil, nil, nil, nil, err
			}
			rtm2[la] = mt
		}
	}

	rootU, _ := fs[0].Get(pgs[0].Layout.Root())
	th := tsd[rootU]
	pts := make([]lattice.Type, len(ts))
	for i, t := range ts {
		mt, err := lattice.MinType(t, th)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		pts[i] = mt
	}

	return th, pts, rtm2, &ConjExtra{Patterns: pgs, Unify: fs, Refs: rms}, nil
}

// Disj type-checks a disjunction of patterns: each is checked
// independently, then match.MatchDisj unifies their node identities and
// the lattice supremum reconciles the type of every collapsed position.
// Unlike Conj, structural divergence between disjuncts is never an
// error (spec.md §4.4.3).
//
// Grounded on tc.py's tc_disj.
func (c *Checker) Disj(patterns []patternast.Pattern) (lattice.Type, []lattice.Type, map[symbol.Label]lattice.Type, *DisjExtra, error) {
	ts := make([]lattice.Type, len(patterns))
	rtms := make([]map[symbol.Label]lattice.Type, len(patterns))
	pgs := make([]*patternast.Graph, len(patterns))
	rms := make([]map[symbol.Label]layout.Node, len(patterns))

	for i, p := range patterns {
		t, rtm, pg, rm, err := c.Pattern(p)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		ts[i], rtms[i], pgs[i], rms[i] = t, rtm, pg, rm
	}

	fs, tsc, err := match.MatchDisj(c.factory, pgs)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	rtm2 := map[symbol.Label]lattice.Type{}
	for i, rtm := range rtms {
		for la := range rtm {
			u, _ := fs[i].Get(rms[i][la])
			rtm2[la] = tsc[u]
		}
	}

	rootU, _ := fs[0].Get(pgs[0].Layout.Root())
	th := tsc[rootU]
	pts := make([]lattice.Type, len(ts))
	copy(pts, ts)

	return th, pts, rtm2, &DisjExtra{Patterns: pgs, Unify: fs, Refs: rms}, nil
}

// Case type-checks one Match alternative, storing whichever Extra shape
// its junction produced into ca.Extra so eval never rebuilds pattern
// graphs, and returns the type the case's bound variables bring into
// its body — used by Stmt to type-check ca.Stmt in an extended Env.
//
// Grounded on tc.py's tc_case.
func (c *Checker) Case(ca ast.Case, env *Env[symbol.Label, lattice.Type]) (lattice.Type, error) {
	var t lattice.Type
	var rtm map[symbol.Label]lattice.Type

	switch junc := ca.Junc.(type) {
	case *patternast.PatternConj:
		th, _, rtm2, extra, err := c.Conj(junc.Patterns)
		if err != nil {
			return nil, err
		}
		t, rtm = th, rtm2
		ca.Extra.Put(extra)
	case *patternast.PatternDisj:
		th, _, rtm2, extra, err := c.Disj(junc.Patterns)
		if err != nil {
			return nil, err
		}
		t, rtm = th, rtm2
		ca.Extra.Put(extra)
	default:
		th, rtm2, pg, rm, err := c.Pattern(junc)
		if err != nil {
			return nil, err
		}
		t, rtm = th, rtm2
		ca.Extra.Put(&SingleExtra{Pattern: pg, Refs: rm})
	}

	env2 := NewEnv(env, rtm)
	if _, err := c.Stmt(ca.Stmt, env2); err != nil {
		return nil, err
	}
	return t, nil
}
