// Package patternast implements the pattern surface forms and the
// pattern-graph builder of spec.md §4.3: ClassPattern, LabeledPattern,
// PatternRef, a ValueSet leaf, PatternConj, and PatternDisj, plus Build,
// which walks a pattern tree into an annotated layout.Graph while
// resolving forward/back references via the placeholder-then-unify
// rule.
//
// Graph is also the representation extracted from a running state graph
// (state.Extract) to serve as the left-hand side of a match: spec.md §4.6
// calls this "a pattern-graph view" of a runtime object, so OGPM reuses
// one annotated-graph type rather than inventing a second.
//
// Grounded on original_source/pyogpm/pattern.py (the surface forms) and
// graph.py's cons_pattern_graph (the builder), restructured the way the
// teacher separates a closed set of AST-like variants (schema/expr
// builtins, schema/type.go's Property/Relation split) from the code that
// walks them.
package patternast
