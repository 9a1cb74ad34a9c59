package match

import (
	"github.com/wke/ogpm/bidict"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/patternast"
)

// LE reports whether a node typed x may stand in for one typed y
// (spec.md §4.4.1's le parameter — lattice.Subtype in production,
// a test double in unit tests).
type LE func(x, y lattice.Type) bool

// Match attempts to embed pattern as a subtype-respecting bijection onto
// a connected region of value (spec.md §4.4.1): every pattern node p1
// maps to exactly one value node p2 with le(typeof(p2), typeof(p1)), no
// two pattern nodes share a value node, and every label pattern declares
// on p1 must also be present on p2. The returned bidict maps pattern
// nodes to the value nodes they were embedded onto.
//
// Grounded on graph.py's cons_match, restructured as an explicit stack
// instead of the original's recursive dfs_match closure.
func Match(pattern, value *patternast.Graph, le LE) (*bidict.Bidict[layout.Node, layout.Node], error) {
	f := bidict.New[layout.Node, layout.Node]()

	type pair struct{ p1, p2 layout.Node }
	stack := []pair{{pattern.Layout.Root(), value.Layout.Root()}}

	for len(stack) > 0 {
		pr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p1, p2 := pr.p1, pr.p2

		if existing, ok := f.Get(p1); ok {
			if existing != p2 {
				return nil, &Error{Kind: Mismatch}
			}
			continue
		}

		if !le(value.TypeOf(p2), pattern.TypeOf(p1)) {
			return nil, &Error{Kind: Mismatch}
		}
		if f.ContainsValue(p2) {
			return nil, &Error{Kind: Mismatch}
		}
		f.Set(p1, p2)

		for _, la := range pattern.Layout.Labels(p1) {
			q1, _ := pattern.Layout.Edge(p1, la)
			q2, ok := value.Layout.Edge(p2, la)
			if !ok {
				return nil, &Error{Kind: Mismatch}
			}
			stack = append(stack, pair{q1, q2})
		}
	}

	return f, nil
}
