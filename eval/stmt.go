package eval

import (
	"context"
	"fmt"
	"strings"

	"github.com/wke/ogpm/ast"
)

// Stmt runs s against the interpreter's state graph (spec.md §4.6;
// grounded on st.py's STMT_TAB/st_stmt).
func (i *Interp) Stmt(ctx context.Context, s ast.Stmt) error {
	switch v := s.(type) {
	case *ast.Match:
		return i.stMatch(ctx, v)
	case *ast.Assign:
		return i.stAssign(ctx, v)
	case *ast.If:
		return i.stIf(ctx, v)
	case *ast.While:
		return i.stWhile(ctx, v)
	case *ast.Print:
		return i.stPrint(ctx, v)
	case *ast.Block:
		return i.stBlock(ctx, v)
	default:
		return fmt.Errorf("%w: stmt %T", ErrUnknownNode, s)
	}
}

func (i *Interp) stPrint(ctx context.Context, pr *ast.Print) error {
	parts := make([]string, len(pr.Args))
	for idx, x := range pr.Args {
		n, err := i.Expr(ctx, x)
		if err != nil {
			return err
		}
		cla := i.sg.ClassOf(n)
		parts[idx] = valueString(i.sg, cla, n)
	}
	i.out(strings.Join(parts, ", "))
	return nil
}

func (i *Interp) stAssign(ctx context.Context, a *ast.Assign) error {
	p, la, err := i.LExpr(ctx, a.LExpr)
	if err != nil {
		return err
	}
	q, err := i.Expr(ctx, a.Expr)
	if err != nil {
		return err
	}
	i.sg.Assign(ctx, p, la, q)
	return nil
}

func (i *Interp) stIf(ctx context.Context, s *ast.If) error {
	p, err := i.Expr(ctx, s.Expr)
	if err != nil {
		return err
	}
	v, _ := i.sg.ValueOf(p)
	if b, _ := v.Payload.(bool); b {
		return i.Stmt(ctx, s.Then)
	}
	return i.Stmt(ctx, s.Else)
}

func (i *Interp) stWhile(ctx context.Context, s *ast.While) error {
	for {
		p, err := i.Expr(ctx, s.Expr)
		if err != nil {
			return err
		}
		v, _ := i.sg.ValueOf(p)
		b, _ := v.Payload.(bool)
		if !b {
			return nil
		}
		if err := i.Stmt(ctx, s.Stmt); err != nil {
			return err
		}
	}
}

func (i *Interp) stBlock(ctx context.Context, blk *ast.Block) error {
	for _, s := range blk.Stmts {
		if err := i.stScope(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

// st_var_decl mints a null placeholder regardless of the declared class
// (spec.md §4.6, "VarDecl": the binding is only guaranteed NullType until
// its first Assign) — v.Class informs typecheck's Env, not this runtime
// node's dynamic class.
func (i *Interp) stScope(ctx context.Context, s ast.Stmt) error {
	switch v := s.(type) {
	case *ast.VarDecl:
		frame := i.sg.PushScope(ctx)
		q, _ := i.sg.AddObject(i.reg.NullType)
		i.sg.Assign(ctx, frame, v.Label, q)
		return nil
	case *ast.VarEnd:
		return i.sg.PopScope(ctx)
	default:
		return i.Stmt(ctx, s)
	}
}

func (i *Interp) stMatch(ctx context.Context, m *ast.Match) error {
	p, err := i.Expr(ctx, m.Expr)
	if err != nil {
		return err
	}
	pg := i.sg.Extract(ctx, p)

	for _, ca := range m.Cases {
		binding, ok, err := matchJunc(pg, ca.Extra.Get())
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		frame := i.sg.PushScope(ctx)
		for la, q := range binding {
			i.sg.Assign(ctx, frame, la, q)
		}
		if err := i.Stmt(ctx, ca.Stmt); err != nil {
			return err
		}
		return i.sg.PopScope(ctx)
	}
	return nil
}

// Program runs prog's top-level block (spec.md §4.6; grounded on
// st.py's st_program).
func (i *Interp) Program(ctx context.Context, prog *ast.Program) error {
	return i.Stmt(ctx, prog.Block)
}
