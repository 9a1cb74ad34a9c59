package typecheck

import (
	"github.com/wke/ogpm/ast"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/symbol"
)

// Stmt type-checks s in env, dispatching on its concrete form (spec.md
// §4.5's statement rules; grounded on tc.py's STMT_TAB/tc_stmt). Every
// rule but Block returns env unchanged — Block is the only statement
// that threads a modified environment, and only internally, to its own
// VarDecl/VarEnd members.
func (c *Checker) Stmt(s ast.Stmt, env *Env[symbol.Label, lattice.Type]) (*Env[symbol.Label, lattice.Type], error) {
	switch v := s.(type) {
	case *ast.Match:
		return c.tcMatch(v, env)
	case *ast.Assign:
		return c.tcAssign(v, env)
	case *ast.If:
		return c.tcIf(v, env)
	case *ast.While:
		return c.tcWhile(v, env)
	case *ast.Print:
		return c.tcPrint(v, env)
	case *ast.Block:
		return c.tcBlock(v, env)
	default:
		return nil, &Error{Kind: NodeType}
	}
}

func (c *Checker) tcMatch(m *ast.Match, env *Env[symbol.Label, lattice.Type]) (*Env[symbol.Label, lattice.Type], error) {
	t2, err := c.Expr(m.Expr, env)
	if err != nil {
		return nil, err
	}
	for i := range m.Cases {
		t, err := c.Case(m.Cases[i], env)
		if err != nil {
			return nil, err
		}
		if !lattice.Subtype(t2, t) && !lattice.Subtype(t, t2) {
			return nil, &Error{Kind: IncompatibleTypes}
		}
	}
	return env, nil
}

func (c *Checker) tcPrint(pr *ast.Print, env *Env[symbol.Label, lattice.Type]) (*Env[symbol.Label, lattice.Type], error) {
	for _, x := range pr.Args {
		if _, err := c.Expr(x, env); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func (c *Checker) tcAssign(a *ast.Assign, env *Env[symbol.Label, lattice.Type]) (*Env[symbol.Label, lattice.Type], error) {
	var lx ast.Expr
	switch a.LExpr.(type) {
	case *ast.VarExpr, *ast.AttrExpr:
		lx = a.LExpr.(ast.Expr)
	default:
		return nil, &Error{Kind: LeftExpr}
	}

	t, err := c.Expr(lx, env)
	if err != nil {
		return nil, err
	}
	t2, err := c.Expr(a.Expr, env)
	if err != nil {
		return nil, err
	}
	if !lattice.Subtype(t2, t) {
		return nil, &Error{Kind: AssignType}
	}
	return env, nil
}

func (c *Checker) tcIf(s *ast.If, env *Env[symbol.Label, lattice.Type]) (*Env[symbol.Label, lattice.Type], error) {
	t, err := c.Expr(s.Expr, env)
	if err != nil {
		return nil, err
	}
	if !isClass(t, c.reg.BoolType) {
		return nil, &Error{Kind: CondType}
	}
	if _, err := c.Stmt(s.Then, env); err != nil {
		return nil, err
	}
	if _, err := c.Stmt(s.Else, env); err != nil {
		return nil, err
	}
	return env, nil
}

func (c *Checker) tcWhile(s *ast.While, env *Env[symbol.Label, lattice.Type]) (*Env[symbol.Label, lattice.Type], error) {
	t, err := c.Expr(s.Expr, env)
	if err != nil {
		return nil, err
	}
	if !isClass(t, c.reg.BoolType) {
		return nil, &Error{Kind: CondType}
	}
	if _, err := c.Stmt(s.Stmt, env); err != nil {
		return nil, err
	}
	return env, nil
}

func (c *Checker) tcBlock(blk *ast.Block, env *Env[symbol.Label, lattice.Type]) (*Env[symbol.Label, lattice.Type], error) {
	env2 := env
	for _, s := range blk.Stmts {
		next, err := c.tcScope(s, env2, env)
		if err != nil {
			return nil, err
		}
		env2 = next
	}
	if env2 != env {
		return nil, &Error{Kind: Scope}
	}
	return env, nil
}

func (c *Checker) tcScope(s ast.Stmt, env, envBase *Env[symbol.Label, lattice.Type]) (*Env[symbol.Label, lattice.Type], error) {
	switch v := s.(type) {
	case *ast.VarDecl:
		return NewEnv(env, map[symbol.Label]lattice.Type{v.Label: v.Class}), nil
	case *ast.VarEnd:
		if env == envBase {
			return nil, &Error{Kind: VarEnd}
		}
		top := env.Top()
		if len(top) != 1 {
			return nil, &Error{Kind: VarEnd}
		}
		if _, ok := top[v.Label]; !ok {
			return nil, &Error{Kind: VarEnd}
		}
		return env.Pop(), nil
	default:
		return c.Stmt(s, env)
	}
}

// Program type-checks a whole program from an empty root environment
// (spec.md §4.5; grounded on tc.py's tc_program).
func (c *Checker) Program(p *ast.Program) error {
	_, err := c.Stmt(p.Block, NewEnv[symbol.Label, lattice.Type](nil, nil))
	return err
}
