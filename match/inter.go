package match

import (
	"github.com/wke/ogpm/bidict"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/patternast"
	"github.com/wke/ogpm/symbol"
)

// Inter collapses the node identities of several pattern graphs that
// compete as alternatives for the same value (spec.md §4.4.3,
// disjunction): every graph contributes a position at each step, all
// positions fold onto one shared destination node, and recursion
// continues only on labels every graph's current position has in
// common. Unlike Union, divergent structure is not an error — the
// graphs simply stop being identified past the point they disagree.
//
// Grounded on graph.py's cons_inter.
func Inter(factory *layout.NodeFactory, graphs []*patternast.Graph) ([]*bidict.Bidict[layout.Node, layout.Node], error) {
	fs := make([]*bidict.Bidict[layout.Node, layout.Node], len(graphs))
	for i := range fs {
		fs[i] = bidict.New[layout.Node, layout.Node]()
	}

	roots := make([]layout.Node, len(graphs))
	for i, g := range graphs {
		roots[i] = g.Layout.Root()
	}

	interStep(factory, graphs, fs, roots)
	return fs, nil
}

func interStep(factory *layout.NodeFactory, graphs []*patternast.Graph, fs []*bidict.Bidict[layout.Node, layout.Node], ps []layout.Node) {
	var uz []layout.Node
	for i, p := range ps {
		if u, ok := fs[i].Get(p); ok {
			uz = append(uz, u)
		}
	}

	var pc layout.Node
	if len(uz) > 0 {
		pc = uz[0]
	} else {
		pc = factory.New()
	}
	for i, p := range ps {
		fs[i].Set(p, pc)
	}
	if len(uz) == len(ps) {
		return
	}

	labelCounts := map[symbol.Label]int{}
	for i, g := range graphs {
		for _, la := range g.Layout.Labels(ps[i]) {
			labelCounts[la]++
		}
	}

	for la, count := range labelCounts {
		if count != len(graphs) {
			continue
		}
		qs := make([]layout.Node, len(graphs))
		for i, g := range graphs {
			qs[i], _ = g.Layout.Edge(ps[i], la)
		}
		interStep(factory, graphs, fs, qs)
	}
}
