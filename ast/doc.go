// Package ast is the abstract syntax of the object language: statements,
// expressions, and the Match statement's Case/Extra plumbing. It depends
// on patternast for the junction a Case matches against, never the
// reverse.
//
// Grounded on original_source/pyogpm/asx.py (statements, expressions,
// Program) and pattern.py (Case, Extra, MatchStmt).
package ast
