// Package layout implements the labeled graph kernel of spec.md §3-§4.1:
// opaque Nodes minted by a monotonic factory, at-most-one-edge-per-
// (node, label) Layout Graphs, reachability GC, and the object/attribute
// construction primitives (add object, swing, extract) every other graph
// layer (state, patternast, match) is built from.
//
// Grounded on original_source/pyogpm/graph.py's Node/Edges/LayoutGraph
// namedtuples and gc_layout/swing_layout/add_object_to_layout/
// extract_pattern functions, restructured the way the teacher's graph
// package structures its own mutable, mutex-guarded Graph type
// (graph/graph.go) rather than as free functions over a tuple.
package layout
