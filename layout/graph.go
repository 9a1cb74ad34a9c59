package layout

import (
	"context"
	"log/slog"

	"github.com/wke/ogpm/internal/trace"
	"github.com/wke/ogpm/symbol"
)

// Graph is a rooted Layout Graph (spec.md §3, "Layout Graph"): a node
// set, at-most-one-edge-per-(node, label), and a distinguished Root.
//
// Graph is not safe for concurrent use — spec.md §5 specifies a single
// program executing synchronously at a time, so Graph forgoes the
// sync.RWMutex the teacher's graph.Graph needs for its concurrent
// Add/AddComposed API.
type Graph struct {
	config  graphConfig
	factory *NodeFactory

	nodes map[Node]struct{}
	edges map[Node]map[symbol.Label]Node
	root  Node
}

// NewGraph constructs a graph sharing factory with its caller (so that
// Node identities remain unique across every graph an interpreter run
// creates — layout, state, and every pattern graph built during
// matching) and mints a fresh Root.
func NewGraph(factory *NodeFactory, opts ...GraphOption) *Graph {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	root := factory.New()
	return &Graph{
		config:  cfg,
		factory: factory,
		nodes:   map[Node]struct{}{root: {}},
		edges:   make(map[Node]map[symbol.Label]Node),
		root:    root,
	}
}

// NewEmpty constructs a graph with no nodes and no root set, for callers
// that mint their own root node as part of a larger construction (e.g.
// patternast.Build, where the root is whatever node the top-level
// pattern parses to, not an arbitrary fresh node).
func NewEmpty(factory *NodeFactory, opts ...GraphOption) *Graph {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph{
		config:  cfg,
		factory: factory,
		nodes:   make(map[Node]struct{}),
		edges:   make(map[Node]map[symbol.Label]Node),
	}
}

// RewriteTarget replaces every edge target equal to old with new, across
// every source node in the graph. Used by patternast.Build to collapse
// a reference placeholder into the node its LabeledPattern resolves to
// (spec.md §4.3, "unify").
func (g *Graph) RewriteTarget(old, new Node) {
	for _, out := range g.edges {
		for l, q := range out {
			if q == old {
				out[l] = new
			}
		}
	}
	if g.root == old {
		g.root = new
	}
}

// Root returns the graph's current root node.
func (g *Graph) Root() Node {
	if g == nil {
		return Node{}
	}
	return g.root
}

// SetRoot replaces the graph's root (used by scope push/pop in the
// state package, and by Extract to freeze a subgraph view).
func (g *Graph) SetRoot(n Node) {
	g.root = n
}

// Has reports whether n is a member of the graph's node set.
func (g *Graph) Has(n Node) bool {
	if g == nil {
		return false
	}
	_, ok := g.nodes[n]
	return ok
}

// Len returns the number of nodes currently in the graph.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// NewNode mints a fresh node and adds it to the graph's node set
// (spec.md §4.1, "new node").
func (g *Graph) NewNode() Node {
	n := g.factory.New()
	g.nodes[n] = struct{}{}
	return n
}

// AddObject mints a node p and, for every label in attrs, a fresh child
// node with an edge p --l--> child; returns p and the label->child map
// (spec.md §4.1, "add object(g, cla)" — the class-specific part, typing
// p and its children, is layered on top by the state package, which is
// the only caller that knows about lattice.Class).
func (g *Graph) AddObject(attrs []symbol.Label) (Node, map[symbol.Label]Node) {
	p := g.NewNode()
	children := make(map[symbol.Label]Node, len(attrs))
	for _, la := range attrs {
		q := g.NewNode()
		g.Swing(p, la, q)
		children[la] = q
	}
	return p, children
}

// Swing assigns or overwrites the target of edge (p, l), adding l to
// labels(p) if it was not already present (spec.md §4.1, "swing(g, p,
// l, q)").
func (g *Graph) Swing(p Node, l symbol.Label, q Node) {
	g.nodes[p] = struct{}{}
	g.nodes[q] = struct{}{}
	out, ok := g.edges[p]
	if !ok {
		out = make(map[symbol.Label]Node)
		g.edges[p] = out
	}
	out[l] = q
}

// Edge returns the target of edge (p, l) and true if it exists.
func (g *Graph) Edge(p Node, l symbol.Label) (Node, bool) {
	out, ok := g.edges[p]
	if !ok {
		return Node{}, false
	}
	q, ok := out[l]
	return q, ok
}

// Labels returns the labels outgoing from p, in no particular order.
func (g *Graph) Labels(p Node) []symbol.Label {
	out, ok := g.edges[p]
	if !ok {
		return nil
	}
	labels := make([]symbol.Label, 0, len(out))
	for l := range out {
		labels = append(labels, l)
	}
	return labels
}

// HasLabel reports whether p has an outgoing edge labeled l.
func (g *Graph) HasLabel(p Node, l symbol.Label) bool {
	out, ok := g.edges[p]
	if !ok {
		return false
	}
	_, ok = out[l]
	return ok
}

// GC performs breadth-first reachability from Root, dropping every
// unreachable node and its edges (spec.md §4.1, "GC(g)"). GC is
// idempotent (spec.md §8, property 1).
func (g *Graph) GC(ctx context.Context) {
	op := trace.Begin(ctx, g.config.logger, "ogpm.layout.gc", slog.Int("nodes_before", len(g.nodes)))
	var retErr error
	defer func() { op.End(retErr) }()

	reachable := g.reachableFrom(g.root)

	for n := range g.nodes {
		if _, ok := reachable[n]; !ok {
			delete(g.nodes, n)
			delete(g.edges, n)
		}
	}
	for p, out := range g.edges {
		if _, ok := reachable[p]; !ok {
			delete(g.edges, p)
			continue
		}
		for l, q := range out {
			if _, ok := reachable[q]; !ok {
				delete(out, l)
			}
		}
	}

	trace.Debug(ctx, g.config.logger, "gc complete",
		slog.Int("nodes_after", len(g.nodes)),
	)
}

func (g *Graph) reachableFrom(start Node) map[Node]struct{} {
	reachable := map[Node]struct{}{start: {}}
	queue := []Node{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, q := range g.edges[p] {
			if _, ok := reachable[q]; ok {
				continue
			}
			reachable[q] = struct{}{}
			queue = append(queue, q)
		}
	}
	return reachable
}

// Extract builds a new rooted graph consisting of exactly the subgraph
// reachable from p (spec.md §4.1, "extract(g, p)"): a fresh Graph whose
// root is p, restricted by reachability GC. The returned graph shares
// Node identity with g (it is a view, not a deep copy of node values —
// there is nothing to copy, Nodes are opaque) but has its own edge
// tables so that further mutation of the extracted graph cannot affect g.
func (g *Graph) Extract(ctx context.Context, p Node) *Graph {
	reachable := g.reachableFrom(p)

	out := &Graph{
		config:  g.config,
		factory: g.factory,
		nodes:   make(map[Node]struct{}, len(reachable)),
		edges:   make(map[Node]map[symbol.Label]Node),
		root:    p,
	}
	for n := range reachable {
		out.nodes[n] = struct{}{}
	}
	for src, labels := range g.edges {
		if _, ok := reachable[src]; !ok {
			continue
		}
		cp := make(map[symbol.Label]Node, len(labels))
		for l, dst := range labels {
			cp[l] = dst
		}
		out.edges[src] = cp
	}

	trace.Debug(ctx, g.config.logger, "ogpm.layout.extract", slog.Int("nodes", len(out.nodes)))
	return out
}

// DebugString renders the graph's node and edge tables deterministically
// (sorted by node id then label), for tests and trace logs only.
func (g *Graph) DebugString() string {
	return debugString(g)
}
