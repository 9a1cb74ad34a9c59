package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/symbol"
)

func TestGraph_SwingAndEdge(t *testing.T) {
	factory := layout.NewNodeFactory()
	g := layout.NewGraph(factory)

	n := g.NewNode()
	la := symbol.NewLabel("a")
	g.Swing(g.Root(), la, n)

	got, ok := g.Edge(g.Root(), la)
	require.True(t, ok)
	require.Equal(t, n, got)

	// Swing overwrites.
	n2 := g.NewNode()
	g.Swing(g.Root(), la, n2)
	got, ok = g.Edge(g.Root(), la)
	require.True(t, ok)
	require.Equal(t, n2, got)
}

func TestGraph_AddObject(t *testing.T) {
	factory := layout.NewNodeFactory()
	g := layout.NewGraph(factory)

	labels := []symbol.Label{symbol.NewLabel("x"), symbol.NewLabel("y")}
	p, children := g.AddObject(labels)

	require.True(t, g.Has(p))
	require.Len(t, children, 2)
	for _, la := range labels {
		child, ok := children[la]
		require.True(t, ok)
		got, ok := g.Edge(p, la)
		require.True(t, ok)
		require.Equal(t, child, got)
	}
}

func TestGraph_GC_DropsUnreachable(t *testing.T) {
	factory := layout.NewNodeFactory()
	g := layout.NewGraph(factory)

	reachable := g.NewNode()
	orphan := g.NewNode()
	g.Swing(g.Root(), symbol.NewLabel("kept"), reachable)

	require.True(t, g.Has(orphan))
	g.GC(context.Background())
	require.False(t, g.Has(orphan))
	require.True(t, g.Has(reachable))
}

func TestGraph_GC_Idempotent(t *testing.T) {
	factory := layout.NewNodeFactory()
	g := layout.NewGraph(factory)
	g.NewNode()
	g.Swing(g.Root(), symbol.NewLabel("a"), g.NewNode())

	ctx := context.Background()
	g.GC(ctx)
	before := g.DebugString()
	g.GC(ctx)
	require.Equal(t, before, g.DebugString())
}

func TestGraph_Extract_FreezesSubgraph(t *testing.T) {
	factory := layout.NewNodeFactory()
	g := layout.NewGraph(factory)

	p := g.NewNode()
	child := g.NewNode()
	g.Swing(p, symbol.NewLabel("c"), child)
	g.Swing(g.Root(), symbol.NewLabel("unrelated"), g.NewNode())

	view := g.Extract(context.Background(), p)
	require.Equal(t, p, view.Root())
	require.True(t, view.Has(p))
	require.True(t, view.Has(child))
	require.Equal(t, 2, view.Len())

	// Mutating the view must not affect g.
	view.Swing(p, symbol.NewLabel("new"), view.NewNode())
	require.False(t, g.HasLabel(p, symbol.NewLabel("new")))
}
