package layout

import (
	"fmt"
	"sort"
	"strings"
)

// debugString renders a graph's node and edge tables in deterministic
// order, grounded on subtype.py/graph.py's own ad hoc pretty-printers
// used throughout the original's test suite.
func debugString(g *Graph) string {
	nodes := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].id < nodes[j].id })

	var b strings.Builder
	fmt.Fprintf(&b, "Graph{root: %s, nodes: [", g.root)
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n.String())
	}
	b.WriteString("], edges: {")
	first := true
	for _, n := range nodes {
		out, ok := g.edges[n]
		if !ok || len(out) == 0 {
			continue
		}
		labels := make([]string, 0, len(out))
		for l := range out {
			labels = append(labels, l.String())
		}
		sort.Strings(labels)
		for _, lname := range labels {
			if !first {
				b.WriteString(", ")
			}
			first = false
			var target Node
			for l, q := range out {
				if l.String() == lname {
					target = q
					break
				}
			}
			fmt.Fprintf(&b, "%s.%s -> %s", n, lname, target)
		}
	}
	b.WriteString("}}")
	return b.String()
}
