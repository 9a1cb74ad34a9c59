package patternast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wke/ogpm/diag"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/patternast"
	"github.com/wke/ogpm/symbol"
)

// Grounded on original_source/pyogpm/test_cases.py's test_fig2: a
// self-referential tree pattern binding w, x, y, z where z is referenced
// via PatternRef before its LabeledPattern is walked.
func TestBuild_BackReferenceUnification(t *testing.T) {
	reg := lattice.NewRegistry()
	e, l, r := symbol.NewLabel("e"), symbol.NewLabel("l"), symbol.NewLabel("r")
	w, x, y, z := symbol.NewLabel("w"), symbol.NewLabel("x"), symbol.NewLabel("y"), symbol.NewLabel("z")

	treeTag := symbol.NewTag("T")
	tree, err := lattice.NewClass(reg, treeTag, nil, map[symbol.Label]lattice.Type{
		e: reg.IntType,
		l: &lattice.LazyTag{Tag: treeTag},
		r: &lattice.LazyTag{Tag: treeTag},
	})
	require.NoError(t, err)
	tree, err = tree.ResolveLazy(reg)
	require.NoError(t, err)

	zero := lattice.NewValueSet(lattice.NewValue(reg.IntType, int64(0)))

	root := &patternast.ClassPattern{
		Class: tree,
		Attrs: map[symbol.Label]patternast.Pattern{
			e: &patternast.ValueSetPattern{Set: zero},
			l: &patternast.LabeledPattern{
				Name: w,
				Base: &patternast.ClassPattern{
					Class: tree,
					Attrs: map[symbol.Label]patternast.Pattern{
						l: &patternast.LabeledPattern{Name: x, Base: &patternast.ClassPattern{Class: tree}},
						r: &patternast.LabeledPattern{
							Name: y,
							Base: &patternast.ClassPattern{
								Class: tree,
								Attrs: map[symbol.Label]patternast.Pattern{
									l: &patternast.PatternRef{Name: w},
									r: &patternast.PatternRef{Name: z},
								},
							},
						},
					},
				},
			},
			r: &patternast.LabeledPattern{Name: z, Base: &patternast.ClassPattern{Class: tree}},
		},
	}

	factory := layout.NewNodeFactory()
	g, refs, err := patternast.Build(factory, root)
	require.NoError(t, err)
	require.Len(t, refs, 4)

	wNode := refs[w]
	yNode := refs[y]
	yChildW, ok := g.Layout.Edge(yNode, l)
	require.True(t, ok)
	require.Equal(t, wNode, yChildW, "y.l should have been unified to w's node")

	zNode := refs[z]
	yChildZ, ok := g.Layout.Edge(yNode, r)
	require.True(t, ok)
	require.Equal(t, zNode, yChildZ, "y.r should have been unified to z's node")
}

func TestBuild_UndefRef(t *testing.T) {
	reg := lattice.NewRegistry()
	tag := symbol.NewTag("Solo")
	cla, err := lattice.NewClass(reg, tag, nil, nil)
	require.NoError(t, err)

	root := &patternast.ClassPattern{
		Class: cla,
		Attrs: map[symbol.Label]patternast.Pattern{
			symbol.NewLabel("x"): &patternast.PatternRef{Name: symbol.NewLabel("never_bound")},
		},
	}

	factory := layout.NewNodeFactory()
	_, _, err = patternast.Build(factory, root)
	require.Error(t, err)
	var buildErr *patternast.BuildError
	require.ErrorAs(t, err, &buildErr)
	require.Equal(t, patternast.UndefRef, buildErr.Kind)
	require.Equal(t, diag.E_PATTERN_UNDEF_REF, buildErr.Code())
	issue := buildErr.Issue()
	require.Equal(t, diag.Error, issue.Severity())
	require.Equal(t, diag.E_PATTERN_UNDEF_REF, issue.Code())
}

func TestBuild_RedefRef(t *testing.T) {
	reg := lattice.NewRegistry()
	tag := symbol.NewTag("Pair")
	cla, err := lattice.NewClass(reg, tag, nil, map[symbol.Label]lattice.Type{})
	require.NoError(t, err)
	name := symbol.NewLabel("n")

	root := &patternast.ClassPattern{
		Class: cla,
		Attrs: map[symbol.Label]patternast.Pattern{
			symbol.NewLabel("a"): &patternast.LabeledPattern{Name: name, Base: &patternast.ClassPattern{Class: cla}},
			symbol.NewLabel("b"): &patternast.LabeledPattern{Name: name, Base: &patternast.ClassPattern{Class: cla}},
		},
	}

	factory := layout.NewNodeFactory()
	_, _, err = patternast.Build(factory, root)
	require.Error(t, err)
	var buildErr *patternast.BuildError
	require.ErrorAs(t, err, &buildErr)
	require.Equal(t, patternast.RedefRef, buildErr.Kind)
	require.Equal(t, diag.E_PATTERN_REDEF_REF, buildErr.Code())
}

func TestBuildError_UnsupportedNesting_CodeAndIssue(t *testing.T) {
	err := &patternast.BuildError{Kind: patternast.UnsupportedNesting}
	require.Equal(t, diag.E_PATTERN_UNSUPPORTED_NESTING, err.Code())
	issue := err.Issue()
	require.Equal(t, diag.Error, issue.Severity())
	require.Equal(t, diag.E_PATTERN_UNSUPPORTED_NESTING, issue.Code())
}
