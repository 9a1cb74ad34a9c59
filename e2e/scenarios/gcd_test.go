package scenarios_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wke/ogpm"
	"github.com/wke/ogpm/ast"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/symbol"
)

// Grounded on original_source/pyogpm/test_cases.py's test_gcd: declares
// m/n as 210/120, reports whether either exceeds 200, then runs the
// Euclidean algorithm in a While loop and prints the final "gcd" line.
func TestGCD_PrintsNumbersBoundsAndResult(t *testing.T) {
	var lines []string
	interp := ogpm.New(ogpm.WithOutput(func(s string) { lines = append(lines, s) }))
	reg := interp.Registry()

	m, n, tLabel := symbol.NewLabel("m"), symbol.NewLabel("n"), symbol.NewLabel("t")
	igt, ine, mod := symbol.NewLabel("igt"), symbol.NewLabel("ine"), symbol.NewLabel("mod")

	intVal := func(v int64) *ast.Value { return &ast.Value{Value: lattice.NewValue(reg.IntType, v)} }
	strVal := func(s string) *ast.Value { return &ast.Value{Value: lattice.NewValue(reg.StrType, s)} }

	block := &ast.Block{Stmts: []ast.Stmt{
		&ast.VarDecl{Label: m, Class: reg.IntType},
		&ast.VarDecl{Label: n, Class: reg.IntType},
		&ast.Assign{LExpr: &ast.VarExpr{Label: m}, Expr: intVal(210)},
		&ast.Assign{LExpr: &ast.VarExpr{Label: n}, Expr: intVal(120)},
		&ast.Print{Args: []ast.Expr{strVal("numbers"), &ast.VarExpr{Label: m}, &ast.VarExpr{Label: n}}},

		&ast.If{
			Expr: &ast.OrExpr{
				Left:  &ast.OpExpr{Op: igt, Args: []ast.Expr{&ast.VarExpr{Label: m}, intVal(200)}},
				Right: &ast.OpExpr{Op: igt, Args: []ast.Expr{&ast.VarExpr{Label: n}, intVal(200)}},
			},
			Then: &ast.Print{Args: []ast.Expr{strVal("one is > 200")}},
			Else: &ast.Print{Args: []ast.Expr{strVal("none is > 200")}},
		},
		&ast.If{
			Expr: &ast.AndExpr{
				Left:  &ast.OpExpr{Op: igt, Args: []ast.Expr{&ast.VarExpr{Label: m}, intVal(200)}},
				Right: &ast.OpExpr{Op: igt, Args: []ast.Expr{&ast.VarExpr{Label: n}, intVal(200)}},
			},
			Then: &ast.Print{Args: []ast.Expr{strVal("both are > 200")}},
			Else: &ast.Print{Args: []ast.Expr{strVal("one is <= 200")}},
		},

		&ast.Block{Stmts: []ast.Stmt{
			&ast.While{
				Expr: &ast.OpExpr{Op: ine, Args: []ast.Expr{&ast.VarExpr{Label: n}, intVal(0)}},
				Stmt: &ast.Block{Stmts: []ast.Stmt{
					&ast.VarDecl{Label: tLabel, Class: reg.IntType},
					&ast.Assign{LExpr: &ast.VarExpr{Label: tLabel}, Expr: &ast.VarExpr{Label: m}},
					&ast.Assign{LExpr: &ast.VarExpr{Label: m}, Expr: &ast.VarExpr{Label: n}},
					&ast.Assign{
						LExpr: &ast.VarExpr{Label: n},
						Expr:  &ast.OpExpr{Op: mod, Args: []ast.Expr{&ast.VarExpr{Label: tLabel}, &ast.VarExpr{Label: n}}},
					},
					&ast.VarEnd{Label: tLabel},
				}},
			},
			&ast.Print{Args: []ast.Expr{strVal("gcd"), &ast.VarExpr{Label: m}}},
		}},

		&ast.VarEnd{Label: n},
		&ast.VarEnd{Label: m},
	}}
	prog := &ast.Program{Block: block}

	diags, err := interp.Run(context.Background(), prog)
	require.NoError(t, err)
	require.True(t, diags.OK())

	require.Equal(t, []string{
		"numbers, 210, 120",
		"one is > 200",
		"one is <= 200",
		"gcd, 30",
	}, lines)
}
