package typecheck

import (
	"github.com/wke/ogpm/ast"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/symbol"
)

// Expr type-checks x in env, dispatching on its concrete form (spec.md
// §4.5's expression rules; grounded on tc.py's EXPR_TAB/tc_expr).
func (c *Checker) Expr(x ast.Expr, env *Env[symbol.Label, lattice.Type]) (lattice.Type, error) {
	switch v := x.(type) {
	case *ast.Value:
		return v.Value.Class, nil

	case *ast.VarExpr:
		t, ok := env.Get(v.Label)
		if !ok {
			return nil, &Error{Kind: UndefVar}
		}
		return t, nil

	case *ast.AttrExpr:
		t, err := c.Expr(v.Expr, env)
		if err != nil {
			return nil, err
		}
		cla, ok := t.(*lattice.Class)
		if !ok {
			return nil, &Error{Kind: ParentObject}
		}
		at, ok := cla.AttrType(v.Label)
		if !ok {
			return nil, &Error{Kind: Attr}
		}
		return at, nil

	case *ast.OpExpr:
		d, err := c.table.Get(v.Op)
		if err != nil {
			return nil, &Error{Kind: Op}
		}
		if len(v.Args) != len(d.ParTypes) {
			return nil, &Error{Kind: OpArgLen}
		}
		for i, arg := range v.Args {
			at, err := c.Expr(arg, env)
			if err != nil {
				return nil, err
			}
			if !typesEqual(at, d.ParTypes[i]) {
				return nil, &Error{Kind: OpArgType}
			}
		}
		return d.ResType, nil

	case *ast.NewExpr:
		if v.Class == nil {
			return nil, &Error{Kind: Class}
		}
		return v.Class, nil

	case *ast.AndExpr, *ast.OrExpr:
		return c.tcAndOr(v, env)

	default:
		return nil, &Error{Kind: NodeType}
	}
}

func (c *Checker) tcAndOr(x ast.Expr, env *Env[symbol.Label, lattice.Type]) (lattice.Type, error) {
	var left, right ast.Expr
	switch v := x.(type) {
	case *ast.AndExpr:
		left, right = v.Left, v.Right
	case *ast.OrExpr:
		left, right = v.Left, v.Right
	}

	lt, err := c.Expr(left, env)
	if err != nil {
		return nil, err
	}
	rt, err := c.Expr(right, env)
	if err != nil {
		return nil, err
	}
	if !isClass(lt, c.reg.BoolType) || !isClass(rt, c.reg.BoolType) {
		return nil, &Error{Kind: BoolType}
	}
	return c.reg.BoolType, nil
}
