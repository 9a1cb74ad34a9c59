// Package state implements the State Graph of spec.md §3 / §4.2: a
// rooted layout.Graph annotated with each node's dynamic lattice.Class
// and, for primitive-typed nodes, its lattice.Value, plus the scope-frame
// operations (push, pop, find variable, find attribute) the evaluator
// drives.
//
// Grounded on original_source/pyogpm/graph.py's StateGraph namedtuple and
// its init_state_graph/push_state/pop_state/find_var/find_attr/
// add_object_to_state/add_value_to_state/swing_state functions,
// restructured as methods on a single owning type the way the teacher's
// graph.Graph owns its instances/edges maps behind method boundaries
// instead of free functions over a tuple.
package state
