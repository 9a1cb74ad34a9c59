package eval

import "errors"

// ErrInternal is the base sentinel every eval-time internal error wraps
// (mirrors the ErrInternal idiom used by layout and ops).
var ErrInternal = errors.New("eval: internal error")

// ErrUnknownNode reports an ast.Expr, ast.LExpr, ast.Stmt, or
// patternast.Pattern concrete type this package's dispatch does not
// recognize — it can only occur if the ast package gains a new case
// this package has not been taught to evaluate.
var ErrUnknownNode = errors.New("eval: unrecognized ast node")
