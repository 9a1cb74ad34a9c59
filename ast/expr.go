package ast

import (
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/symbol"
)

// Expr is the closed interface implemented by every expression form.
type Expr interface {
	isExpr()
}

// LExpr is the closed interface implemented by the expression forms
// that may appear on the left of an assignment (spec.md §4.6's l-expr
// rule: a VarExpr or AttrExpr evaluates to a (parent, label) pair rather
// than to a node). VarExpr and AttrExpr satisfy both Expr and LExpr —
// the same syntax reads as a value or as an assignment target depending
// on where the type checker encounters it.
type LExpr interface {
	isLExpr()
}

// Value is a literal value expression.
type Value struct {
	Value lattice.Value
}

// VarExpr references a variable bound by an enclosing scope frame.
type VarExpr struct {
	Label symbol.Label
}

// AttrExpr reads (or, as an LExpr, addresses) an attribute of the node
// Expr evaluates to.
type AttrExpr struct {
	Expr  Expr
	Label symbol.Label
}

// OpExpr invokes an Operator Table entry (see the ops package) with Args
// as its evaluated arguments.
type OpExpr struct {
	Op   symbol.Label
	Args []Expr
}

// NewExpr constructs a fresh object of Class.
type NewExpr struct {
	Class *lattice.Class
}

// AndExpr short-circuits: if Left is not true, it is the result;
// otherwise Right is evaluated and returned.
type AndExpr struct {
	Left, Right Expr
}

// OrExpr short-circuits: if Left is not false, it is the result;
// otherwise Right is evaluated and returned.
type OrExpr struct {
	Left, Right Expr
}

func (*Value) isExpr()    {}
func (*VarExpr) isExpr()  {}
func (*AttrExpr) isExpr() {}
func (*OpExpr) isExpr()   {}
func (*NewExpr) isExpr()  {}
func (*AndExpr) isExpr()  {}
func (*OrExpr) isExpr()   {}

func (*VarExpr) isLExpr()  {}
func (*AttrExpr) isLExpr() {}
