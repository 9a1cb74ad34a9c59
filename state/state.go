package state

import (
	"context"
	"log/slog"

	"github.com/wke/ogpm/internal/trace"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/patternast"
	"github.com/wke/ogpm/symbol"
)

// Graph is a State Graph (spec.md §3): a rooted layout.Graph, a per-node
// dynamic Class (NullType for scope frames), and a per-node Value for
// primitive-typed nodes.
type Graph struct {
	logger  *slog.Logger
	factory *layout.NodeFactory
	reg     *lattice.Registry

	Layout  *layout.Graph
	classes map[layout.Node]*lattice.Class
	values  map[layout.Node]lattice.Value
}

// Option configures a Graph's construction.
type Option func(*Graph)

// WithLogger enables trace logging for state graph operations (scope
// push/pop, GC). Pass nil to disable (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) { g.logger = logger }
}

// New constructs a State Graph whose root is the outermost scope frame
// (spec.md §3, "The Root of the State Graph is always the innermost
// frame" — on construction, outermost and innermost coincide), typed
// NullType per spec.md §3's scope-frame convention.
func New(factory *layout.NodeFactory, reg *lattice.Registry, opts ...Option) *Graph {
	lg := layout.NewGraph(factory)
	g := &Graph{
		factory: factory,
		reg:     reg,
		Layout:  lg,
		classes: map[layout.Node]*lattice.Class{lg.Root(): reg.NullType},
		values:  make(map[layout.Node]lattice.Value),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ClassOf returns n's dynamic class, or nil if n is untracked.
func (g *Graph) ClassOf(n layout.Node) *lattice.Class {
	return g.classes[n]
}

// ValueOf returns n's primitive value and true if n is value-typed.
func (g *Graph) ValueOf(n layout.Node) (lattice.Value, bool) {
	v, ok := g.values[n]
	return v, ok
}

// PushScope mints a fresh frame r' with r' --$--> current root, then
// makes r' the new root (spec.md §4.2, "push scope").
func (g *Graph) PushScope(ctx context.Context) layout.Node {
	r := g.Layout.NewNode()
	g.classes[r] = g.reg.NullType
	g.Layout.Swing(r, symbol.ScopeLabel, g.Layout.Root())
	g.Layout.SetRoot(r)
	trace.Debug(ctx, g.logger, "ogpm.state.push_scope", slog.String("frame", r.String()))
	return r
}

// PopScope requires $ in labels(root), moves root to its target, and GCs
// (spec.md §4.2, "pop scope"). Returns a NoScope Error otherwise.
func (g *Graph) PopScope(ctx context.Context) error {
	root := g.Layout.Root()
	parent, ok := g.Layout.Edge(root, symbol.ScopeLabel)
	if !ok {
		return &Error{Kind: NoScope}
	}
	g.Layout.SetRoot(parent)
	g.Layout.GC(ctx)
	trace.Debug(ctx, g.logger, "ogpm.state.pop_scope", slog.String("frame", parent.String()))
	return nil
}

// FindVariable walks $-links outward from the current root until a
// frame containing label l is found, returning that frame and l's
// current target (spec.md §4.2, "find variable").
func (g *Graph) FindVariable(l symbol.Label) (frame, target layout.Node, err error) {
	cur := g.Layout.Root()
	for {
		if t, ok := g.Layout.Edge(cur, l); ok {
			return cur, t, nil
		}
		parent, ok := g.Layout.Edge(cur, symbol.ScopeLabel)
		if !ok {
			return layout.Node{}, layout.Node{}, &Error{Kind: UndefVar, Label: l}
		}
		cur = parent
	}
}

// FindAttribute requires p is tracked and l is one of p's outgoing
// labels, returning its target (spec.md §4.2, "find attribute").
func (g *Graph) FindAttribute(p layout.Node, l symbol.Label) (layout.Node, error) {
	if !g.Layout.Has(p) {
		return layout.Node{}, &Error{Kind: UndefAttr, Label: l}
	}
	t, ok := g.Layout.Edge(p, l)
	if !ok {
		return layout.Node{}, &Error{Kind: UndefAttr, Label: l}
	}
	return t, nil
}

// AddObject mints a node p of class cla and, for each of cla's declared
// attributes, a fresh NullType-classed child wired p --l--> child
// (spec.md §4.1, "add object(g, cla)" specialized with dynamic typing).
func (g *Graph) AddObject(cla *lattice.Class) (layout.Node, map[symbol.Label]layout.Node) {
	p, children := g.Layout.AddObject(cla.AttrLabels())
	g.classes[p] = cla
	for _, child := range children {
		g.classes[child] = g.reg.NullType
	}
	return p, children
}

// AddValue mints a fresh node holding v, classed v.Class (spec.md §4.6,
// "Literal Values: add a fresh primitive node").
func (g *Graph) AddValue(v lattice.Value) layout.Node {
	n := g.Layout.NewNode()
	g.classes[n] = v.Class
	g.values[n] = v
	return n
}

// Assign swings edge (p, l) to q and GCs, matching spec.md §4.6's
// evaluator semantics for Assign: "compute the l-expression (parent,
// label) and r-expression node; swing the edge; GC."
func (g *Graph) Assign(ctx context.Context, p layout.Node, l symbol.Label, q layout.Node) {
	g.Layout.Swing(p, l, q)
	g.Layout.GC(ctx)
}

// Extract freezes the subgraph reachable from p as a pattern-graph view,
// with every node's dynamic Class carried over and every value node's
// annotation replaced by a singleton ValueSet of its current value
// (spec.md §4.6, "extract(state, p)"; grounded on graph.py's
// extract_pattern).
func (g *Graph) Extract(ctx context.Context, p layout.Node) *patternast.Graph {
	sub := g.Layout.Extract(ctx, p)
	pg := patternast.NewGraph(sub)
	for n := range g.reachableTypes(sub) {
		if v, ok := g.values[n]; ok {
			pg.SetType(n, lattice.NewValueSet(v))
			continue
		}
		if cla, ok := g.classes[n]; ok {
			pg.SetType(n, cla)
		}
	}
	return pg
}

// reachableTypes returns the node set of sub for type-annotation
// purposes (Graph does not expose an iterator over its node set, so
// Extract walks the sub-graph's own edges plus its root to enumerate it).
func (g *Graph) reachableTypes(sub *layout.Graph) map[layout.Node]struct{} {
	seen := map[layout.Node]struct{}{sub.Root(): {}}
	queue := []layout.Node{sub.Root()}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, l := range sub.Labels(n) {
			q, ok := sub.Edge(n, l)
			if !ok {
				continue
			}
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			queue = append(queue, q)
		}
	}
	return seen
}
