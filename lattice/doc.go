// Package lattice implements the class/value type lattice of spec.md §3-§4.1:
// named and anonymous classes, the subtype relation extended with value
// sets, and the infimum/supremum operations the graph algorithms need for
// pattern conjunction and disjunction.
//
// Grounded on original_source/pyogpm/subtype.py, restructured the way the
// teacher's schema package structures its own type system (schema/type.go,
// schema/registry.go): a Registry owns named classes instead of a process
// global, and attribute tables are exposed as read-only immutable.Map
// snapshots (schema.Type.Properties-style) rather than raw maps.
package lattice
