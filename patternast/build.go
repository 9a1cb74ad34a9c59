package patternast

import (
	"sort"

	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/symbol"
)

// Build walks root into a rooted Graph, resolving every PatternRef
// against the LabeledPattern binding its name (spec.md §4.3).
//
// Grounded on graph.py's cons_pattern_graph/parse: constructs nodes
// depth-first, and on each LabeledPattern checks whether its name was
// already referenced by an earlier PatternRef. If so, every edge
// currently targeting that reference's placeholder node is rewritten to
// target the freshly constructed node instead — the unify step that
// makes cyclic patterns (back references) representable without a
// separate fixup pass.
//
// root must not itself be a PatternConj or PatternDisj — those are
// resolved by match.Union/match.Inter over multiple independently-built
// Graphs, not nested inside a single Build call.
func Build(factory *layout.NodeFactory, root Pattern) (*Graph, map[symbol.Label]layout.Node, error) {
	b := &builder{
		lg:       layout.NewEmpty(factory),
		types:    make(map[layout.Node]lattice.Type),
		refs:     make(map[symbol.Label]layout.Node),
		resolved: make(map[layout.Node]bool),
	}

	rootNode, err := b.parse(root)
	if err != nil {
		return nil, nil, err
	}
	b.lg.SetRoot(rootNode)

	for name, n := range b.refs {
		if !b.resolved[n] {
			return nil, nil, &BuildError{Kind: UndefRef, Name: name}
		}
	}

	g := NewGraph(b.lg)
	for n, t := range b.types {
		g.SetType(n, t)
	}

	return g, b.refs, nil
}

type builder struct {
	lg       *layout.Graph
	types    map[layout.Node]lattice.Type
	refs     map[symbol.Label]layout.Node
	resolved map[layout.Node]bool
}

func (b *builder) parse(p Pattern) (layout.Node, error) {
	switch v := p.(type) {
	case *ValueSetPattern:
		n := b.lg.NewNode()
		b.types[n] = v.Set
		b.resolved[n] = true
		return n, nil

	case *ClassPattern:
		n := b.lg.NewNode()
		b.types[n] = v.Class
		b.resolved[n] = true

		labels := make([]symbol.Label, 0, len(v.Attrs))
		for la := range v.Attrs {
			labels = append(labels, la)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i].String() < labels[j].String() })

		for _, la := range labels {
			child, err := b.parse(v.Attrs[la])
			if err != nil {
				return layout.Node{}, err
			}
			b.lg.Swing(n, la, child)
		}
		return n, nil

	case *PatternRef:
		if n, ok := b.refs[v.Name]; ok {
			return n, nil
		}
		placeholder := b.lg.NewNode()
		b.refs[v.Name] = placeholder
		return placeholder, nil

	case *LabeledPattern:
		n, err := b.parse(v.Base)
		if err != nil {
			return layout.Node{}, err
		}
		if prior, ok := b.refs[v.Name]; ok {
			if b.resolved[prior] {
				return layout.Node{}, &BuildError{Kind: RedefRef, Name: v.Name}
			}
			b.lg.RewriteTarget(prior, n)
			for name, target := range b.refs {
				if target == prior {
					b.refs[name] = n
				}
			}
		}
		b.refs[v.Name] = n
		b.resolved[n] = true
		return n, nil

	case *PatternConj, *PatternDisj:
		return layout.Node{}, &BuildError{Kind: UnsupportedNesting}

	default:
		return layout.Node{}, &BuildError{Kind: UnsupportedNesting}
	}
}
