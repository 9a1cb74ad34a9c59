package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wke/ogpm/diag"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/symbol"
)

// Grounded on original_source/pyogpm/test_cases.py's test_subtype: builds
// the A/B/C/D/E/F class lattice and checks the subtype relation,
// value-set refinement, and the anonymous inter/union constructors.
func TestSubtype_ClassLattice(t *testing.T) {
	reg := lattice.NewRegistry()

	a, err := lattice.NewClass(reg, symbol.NewTag("A"), nil, map[symbol.Label]lattice.Type{
		symbol.NewLabel("a1"): reg.IntType,
		symbol.NewLabel("a2"): reg.StrType,
	})
	require.NoError(t, err)

	b, err := lattice.NewClass(reg, symbol.NewTag("B"), []*lattice.Class{a}, map[symbol.Label]lattice.Type{
		symbol.NewLabel("b1"): reg.IntType,
		symbol.NewLabel("b2"): reg.StrType,
	})
	require.NoError(t, err)

	c, err := lattice.NewClass(reg, symbol.NewTag("C"), []*lattice.Class{a}, map[symbol.Label]lattice.Type{
		symbol.NewLabel("c1"): reg.IntType,
		symbol.NewLabel("c2"): reg.StrType,
	})
	require.NoError(t, err)

	d, err := lattice.NewClass(reg, symbol.NewTag("D"), []*lattice.Class{b, c}, map[symbol.Label]lattice.Type{
		symbol.NewLabel("d1"): reg.IntType,
		symbol.NewLabel("d2"): reg.StrType,
	})
	require.NoError(t, err)

	e, err := lattice.Inter([]*lattice.Class{b, c})
	require.NoError(t, err)

	require.True(t, lattice.Subtype(d, e), "D should be a subtype of E = inter(B, C)")
	require.False(t, lattice.Subtype(e, d), "E = inter(B, C) is not necessarily a subtype of D")

	require.True(t, lattice.Subtype(reg.NullType, a), "NullType is the universal bottom")

	small := lattice.NewValueSet(
		lattice.NewValue(reg.IntType, int64(1)),
		lattice.NewValue(reg.IntType, int64(2)),
	)
	digits := lattice.NewValueSet(
		lattice.NewValue(reg.IntType, int64(0)), lattice.NewValue(reg.IntType, int64(1)),
		lattice.NewValue(reg.IntType, int64(2)), lattice.NewValue(reg.IntType, int64(3)),
		lattice.NewValue(reg.IntType, int64(4)), lattice.NewValue(reg.IntType, int64(5)),
		lattice.NewValue(reg.IntType, int64(6)), lattice.NewValue(reg.IntType, int64(7)),
		lattice.NewValue(reg.IntType, int64(8)), lattice.NewValue(reg.IntType, int64(9)),
	)
	require.True(t, lattice.Subtype(small, digits))

	outOfRange := lattice.NewValueSet(
		lattice.NewValue(reg.IntType, int64(1)),
		lattice.NewValue(reg.IntType, int64(2)),
		lattice.NewValue(reg.IntType, int64(10)),
	)
	require.False(t, lattice.Subtype(outOfRange, digits))
	require.True(t, lattice.Subtype(small, reg.IntType))

	f, err := lattice.Union([]*lattice.Class{b, c})
	require.NoError(t, err)
	require.True(t, lattice.Subtype(f, a), "union(B, C) keeps A, the ancestor tag B and C share")
	require.True(t, a.Equal(f))
}

// Grounded on test_fig2: a self-referential tree class built via a
// LazyTag placeholder, resolved after the class body completes.
func TestClass_ResolveLazy_SelfReferential(t *testing.T) {
	reg := lattice.NewRegistry()
	treeTag := symbol.NewTag("T")

	tree, err := lattice.NewClass(reg, treeTag, nil, map[symbol.Label]lattice.Type{
		symbol.NewLabel("e"): reg.IntType,
		symbol.NewLabel("l"): &lattice.LazyTag{Tag: treeTag},
		symbol.NewLabel("r"): &lattice.LazyTag{Tag: treeTag},
	})
	require.NoError(t, err)

	tree, err = tree.ResolveLazy(reg)
	require.NoError(t, err)

	left, ok := tree.AttrType(symbol.NewLabel("l"))
	require.True(t, ok)
	require.Same(t, tree, left)
}

func TestClass_NewClass_DuplicateTagRejected(t *testing.T) {
	reg := lattice.NewRegistry()
	_, err := lattice.NewClass(reg, symbol.NewTag("X"), nil, nil)
	require.NoError(t, err)

	_, err = lattice.NewClass(reg, symbol.NewTag("X"), nil, nil)
	require.Error(t, err)
	var latErr *lattice.LatticeError
	require.ErrorAs(t, err, &latErr)
	require.Equal(t, lattice.DuplicateClass, latErr.Kind)
	require.Equal(t, diag.E_DUPLICATE_CLASS, latErr.Code())
	issue := latErr.Issue()
	require.Equal(t, diag.Error, issue.Severity())
	require.Equal(t, diag.E_DUPLICATE_CLASS, issue.Code())
}

func TestClass_NewClass_AttrTypeConflictRejected(t *testing.T) {
	reg := lattice.NewRegistry()
	base, err := lattice.NewClass(reg, symbol.NewTag("Base"), nil, map[symbol.Label]lattice.Type{
		symbol.NewLabel("v"): reg.IntType,
	})
	require.NoError(t, err)

	_, err = lattice.NewClass(reg, symbol.NewTag("Derived"), []*lattice.Class{base}, map[symbol.Label]lattice.Type{
		symbol.NewLabel("v"): reg.StrType,
	})
	require.Error(t, err)
	var latErr *lattice.LatticeError
	require.ErrorAs(t, err, &latErr)
	require.Equal(t, lattice.AttrTypeConflict, latErr.Kind)
	require.Equal(t, diag.E_ATTR_TYPE_CONFLICT, latErr.Code())
}

func TestLatticeError_MinType_CodeAndIssue(t *testing.T) {
	err := &lattice.LatticeError{Kind: lattice.MinType}
	require.Equal(t, diag.E_NO_COMMON_SUBTYPE, err.Code())
	issue := err.Issue()
	require.Equal(t, diag.Error, issue.Severity())
	require.Equal(t, diag.E_NO_COMMON_SUBTYPE, issue.Code())
	require.NotEmpty(t, issue.Message())
}
