// Package bidict implements the bijection map the graph algorithms build
// while matching, unioning, and intersecting pattern graphs (spec.md §9,
// "The bijection map"): O(1) forward and inverse lookup, with a
// value-list inverse since a synthesized node may be the image of
// several source nodes while union construction is still in progress.
//
// Grounded on original_source/pyogpm/bidict.py's bidict(dict) subclass,
// reshaped as a generic type the way the teacher's immutable.Map[K] is
// a generic wrapper rather than a map[string]any.
package bidict
