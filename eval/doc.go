// Package eval is the small-step evaluator: it runs an ast.Program
// against a state.Graph, using whichever SingleExtra/ConjExtra/DisjExtra
// payload typecheck already stored on each ast.Case so a Match statement
// never rebuilds a pattern graph or recomputes conjunct/disjunct node
// reconciliation at run time.
//
// Grounded on original_source/pyogpm/st.py in full.
package eval
