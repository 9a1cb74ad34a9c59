package match

import (
	"github.com/wke/ogpm/bidict"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/patternast"
	"github.com/wke/ogpm/symbol"
)

// Union collapses the node identities of several pattern graphs that
// must all match the same value simultaneously (spec.md §4.4.2,
// conjunction): starting from every graph's root, corresponding
// positions are folded onto one shared destination node, minted fresh
// via factory unless some of the graphs already agree on an existing
// one. The returned slice has one bidict per input graph, mapping that
// graph's original nodes to their shared destination. Conflicting
// identifications fail with a NoUnion Error.
//
// Grounded on graph.py's cons_union.
func Union(factory *layout.NodeFactory, graphs []*patternast.Graph) ([]*bidict.Bidict[layout.Node, layout.Node], error) {
	fs := make([]*bidict.Bidict[layout.Node, layout.Node], len(graphs))
	for i := range fs {
		fs[i] = bidict.New[layout.Node, layout.Node]()
	}

	roots := make([]layout.Node, len(graphs))
	for i, g := range graphs {
		roots[i] = g.Layout.Root()
	}

	idx := make([]int, len(graphs))
	for i := range idx {
		idx[i] = i
	}

	if err := unionStep(factory, graphs, fs, idx, roots); err != nil {
		return nil, err
	}
	return fs, nil
}

func unionStep(factory *layout.NodeFactory, graphs []*patternast.Graph, fs []*bidict.Bidict[layout.Node, layout.Node], iz []int, ps []layout.Node) error {
	var kz, cz []int
	for _, k := range iz {
		if _, ok := fs[k].Get(ps[k]); ok {
			kz = append(kz, k)
		} else {
			cz = append(cz, k)
		}
	}

	var uz []layout.Node
	for _, k := range kz {
		u, _ := fs[k].Get(ps[k])
		uz = append(uz, u)
	}
	if len(uz) > 1 {
		return &Error{Kind: NoUnion}
	}

	if len(cz) == 0 {
		return nil
	}

	var pd layout.Node
	if len(uz) > 0 {
		pd = uz[0]
		for _, c := range cz {
			if fs[c].ContainsValue(pd) {
				return &Error{Kind: NoUnion}
			}
		}
	} else {
		pd = factory.New()
	}
	for _, c := range cz {
		fs[c].Set(ps[c], pd)
	}

	labelSet := map[symbol.Label]struct{}{}
	for _, i := range iz {
		for _, la := range graphs[i].Layout.Labels(ps[i]) {
			labelSet[la] = struct{}{}
		}
	}

	for la := range labelSet {
		var jz []int
		qs := make([]layout.Node, len(graphs))
		for _, j := range iz {
			if q, ok := graphs[j].Layout.Edge(ps[j], la); ok {
				jz = append(jz, j)
				qs[j] = q
			}
		}
		if err := unionStep(factory, graphs, fs, jz, qs); err != nil {
			return err
		}
	}
	return nil
}
