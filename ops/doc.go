// Package ops implements the black-box Operator Table of spec.md §6: a
// registry, keyed by symbol.Label, of fixed-arity operations over
// primitive-valued state-graph nodes, each entry pairing its parameter
// and result types (consulted by the type checker) with the function
// that actually computes a result node at evaluation time.
//
// Grounded on original_source/pyogpm/op.py's OP_TAB. Table is built from
// a *lattice.Registry rather than populated into a package-level dict at
// import time, matching this codebase's registry-per-interpreter-
// instance convention.
package ops
