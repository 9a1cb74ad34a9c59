// Package typecheck implements the static Type Checker of spec.md §4.5:
// a linked-frame Env of variable bindings threaded through every
// statement and expression rule, plus the pattern-construction checks
// (tc_pattern/tc_conj/tc_disj/tc_case) that verify a Case's junction is
// internally well-typed before the evaluator ever attempts to match
// against it, stashing the reusable pattern-graph/reconciliation data in
// the Case's Extra side channel.
//
// Grounded on original_source/pyogpm/tc.py.
package typecheck
