package eval

import (
	"context"
	"fmt"

	"github.com/wke/ogpm/ast"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/symbol"
)

// Expr evaluates x against the interpreter's state graph, returning the
// node its value now occupies (spec.md §4.6; grounded on st.py's
// EXPR_TAB/eval_expr).
func (i *Interp) Expr(ctx context.Context, x ast.Expr) (layout.Node, error) {
	switch v := x.(type) {
	case *ast.Value:
		return i.sg.AddValue(v.Value), nil

	case *ast.VarExpr:
		_, target, err := i.sg.FindVariable(v.Label)
		if err != nil {
			return layout.Node{}, err
		}
		return target, nil

	case *ast.AttrExpr:
		p, err := i.Expr(ctx, v.Expr)
		if err != nil {
			return layout.Node{}, err
		}
		return i.sg.FindAttribute(p, v.Label)

	case *ast.OpExpr:
		args := make([]layout.Node, len(v.Args))
		for idx, arg := range v.Args {
			n, err := i.Expr(ctx, arg)
			if err != nil {
				return layout.Node{}, err
			}
			args[idx] = n
		}
		return i.table.Invoke(i.sg, v.Op, args)

	case *ast.NewExpr:
		p, _ := i.sg.AddObject(v.Class)
		return p, nil

	case *ast.AndExpr:
		return i.evalAnd(ctx, v.Left, v.Right)

	case *ast.OrExpr:
		return i.evalOr(ctx, v.Left, v.Right)

	default:
		return layout.Node{}, fmt.Errorf("%w: expr %T", ErrUnknownNode, x)
	}
}

func (i *Interp) evalAnd(ctx context.Context, left, right ast.Expr) (layout.Node, error) {
	p, err := i.Expr(ctx, left)
	if err != nil {
		return layout.Node{}, err
	}
	v, _ := i.sg.ValueOf(p)
	if b, ok := v.Payload.(bool); !ok || !b {
		return p, nil
	}
	return i.Expr(ctx, right)
}

func (i *Interp) evalOr(ctx context.Context, left, right ast.Expr) (layout.Node, error) {
	p, err := i.Expr(ctx, left)
	if err != nil {
		return layout.Node{}, err
	}
	v, _ := i.sg.ValueOf(p)
	if b, ok := v.Payload.(bool); !ok || b {
		return p, nil
	}
	return i.Expr(ctx, right)
}

// LExpr evaluates lx to the (parent node, label) pair an assignment
// swings its edge through — VarExpr resolves to the scope frame that
// owns the binding, AttrExpr resolves to its base expression's node
// (spec.md §4.6; grounded on st.py's LEXPR_TAB/eval_lexpr).
func (i *Interp) LExpr(ctx context.Context, lx ast.LExpr) (layout.Node, symbol.Label, error) {
	switch v := lx.(type) {
	case *ast.VarExpr:
		frame, _, err := i.sg.FindVariable(v.Label)
		if err != nil {
			return layout.Node{}, symbol.Label{}, err
		}
		return frame, v.Label, nil

	case *ast.AttrExpr:
		p, err := i.Expr(ctx, v.Expr)
		if err != nil {
			return layout.Node{}, symbol.Label{}, err
		}
		return p, v.Label, nil

	default:
		return layout.Node{}, symbol.Label{}, fmt.Errorf("%w: lexpr %T", ErrUnknownNode, lx)
	}
}
