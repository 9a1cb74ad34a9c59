// Package match implements the Graph Algorithms of spec.md §4.4: a
// subtype-aware DFS bijection between a pattern graph and a value graph
// (Match), and the two node-identification constructions that let a
// conjunctive or disjunctive pattern junction be matched as a single
// unit (Union for conjunction, Inter for disjunction), each paired with
// the corresponding lattice infimum/supremum reconciliation of the
// positions they collapse together.
//
// Grounded on original_source/pyogpm/graph.py's cons_match, cons_union,
// cons_inter, cons_match_conj, and cons_match_disj.
package match
