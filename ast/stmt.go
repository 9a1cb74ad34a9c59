package ast

import (
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/symbol"
)

// Stmt is the closed interface implemented by every statement form.
type Stmt interface {
	isStmt()
}

// Print evaluates each of Args and prints their rendering, comma
// separated (spec.md §4.6, "Print").
type Print struct {
	Args []Expr
}

// Assign evaluates LExpr to a (parent, label) pair and Expr to a node,
// then swings the edge and GCs (spec.md §4.6, "Assign").
type Assign struct {
	LExpr LExpr
	Expr  Expr
}

// If evaluates Expr and runs Then or Else depending on its boolean
// value.
type If struct {
	Expr       Expr
	Then, Else Stmt
}

// While repeatedly evaluates Expr and runs Stmt while it is true.
type While struct {
	Expr Expr
	Stmt Stmt
}

// Block runs Stmts in sequence, within a scope that VarDecl/VarEnd
// members of Stmts may push/pop (spec.md §4.6, "Block").
type Block struct {
	Stmts []Stmt
}

// VarDecl pushes a fresh scope frame binding Label to a new NullType
// object, visible until a matching VarEnd (spec.md §4.6, "VarDecl").
type VarDecl struct {
	Label symbol.Label
	Class *lattice.Class
}

// VarEnd pops the scope frame most recently pushed for Label.
type VarEnd struct {
	Label symbol.Label
}

// Match evaluates Expr, extracts its pattern-graph view, and runs the
// first Case whose junction matches (spec.md §4.4 / §4.6, "Match").
type Match struct {
	Expr  Expr
	Cases []Case
}

func (*Print) isStmt()   {}
func (*Assign) isStmt()  {}
func (*If) isStmt()      {}
func (*While) isStmt()   {}
func (*Block) isStmt()   {}
func (*VarDecl) isStmt() {}
func (*VarEnd) isStmt()  {}
func (*Match) isStmt()   {}
