package ast

import "github.com/wke/ogpm/patternast"

// Case is one alternative of a Match statement: a pattern junction
// (a single pattern, or a PatternConj/PatternDisj of several), the
// statement to run when it matches, and an Extra side-channel the type
// checker fills in so the evaluator does not repeat pattern-graph
// construction and conjunct/disjunct reconciliation at every match
// attempt (spec.md §4.4 / §4.5).
//
// Grounded on pattern.py's Case namedtuple and Extra class.
type Case struct {
	Junc  patternast.Pattern
	Stmt  Stmt
	Extra *Extra
}

// Extra is a mutable write-once-then-read side channel: typecheck calls
// Put with the data its pattern-construction pass computed (pattern
// graphs, reconciliation bidicts, reference maps — shaped differently
// for a single pattern vs. a conjunction vs. a disjunction, so it is
// stored as the concrete producer type, not a common struct), and eval
// calls Get to retrieve it without recomputation.
type Extra struct {
	data any
}

// Put records data, overwriting any prior value.
func (e *Extra) Put(data any) {
	e.data = data
}

// Get returns the most recently Put value, or nil if none was recorded.
func (e *Extra) Get() any {
	return e.data
}

// Program is the root of a parsed unit: a single top-level statement
// (ordinarily a Block).
type Program struct {
	Block Stmt
}
