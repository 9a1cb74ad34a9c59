package lattice

import (
	"fmt"
	"sort"
	"strings"
)

// Value is a single primitive datum annotated with its class (spec.md
// §3, "Value"). Payload holds an int64, string, or bool, matching the
// three value classes INT_TYPE/STR_TYPE/BOOL_TYPE a Registry installs.
//
// Value is a plain comparable struct so it can be used as a Go map key
// directly, the same trick the teacher's immutable.Value uses to wrap
// primitives without boxing overhead.
type Value struct {
	Class   *Class
	Payload any
}

// NewValue constructs a Value. The caller is responsible for ensuring
// cla is a value class and payload's dynamic type matches it (int64 for
// INT_TYPE, string for STR_TYPE, bool for BOOL_TYPE); callers that may
// receive untrusted payloads should check (*Class).IsValueType first.
func NewValue(cla *Class, payload any) Value {
	return Value{Class: cla, Payload: payload}
}

func (v Value) String() string {
	return fmt.Sprintf("%v", v.Payload)
}

// ValueSet is a refinement type over a single value class: the set of
// Values it may take on (spec.md §3, "ValueSet"). A ValueSet is also a
// Type, so it can annotate pattern-graph and state-graph nodes wherever
// a Class can.
//
// Grounded on subtype.py's ValueSet, which hashes by a sorted vector of
// its members; OGPM keeps a sorted cache of the member slice for the
// same reason: deterministic DebugString/Equal without re-sorting on
// every call.
type ValueSet struct {
	members map[Value]struct{}
	vector  []Value
}

// NewValueSet builds a ValueSet from the given values. All values must
// share a single class; NewValueSet does not itself enforce this —
// callers build ValueSets only from already-typed Values produced by a
// single primitive literal's class.
func NewValueSet(values ...Value) *ValueSet {
	members := make(map[Value]struct{}, len(values))
	for _, v := range values {
		members[v] = struct{}{}
	}
	vs := &ValueSet{members: members}
	vs.vector = vs.sortedVector()
	return vs
}

func (vs *ValueSet) sortedVector() []Value {
	out := make([]Value, 0, len(vs.members))
	for v := range vs.members {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprintf("%v", out[i].Payload) < fmt.Sprintf("%v", out[j].Payload)
	})
	return out
}

// Len returns the number of distinct values in the set.
func (vs *ValueSet) Len() int {
	return len(vs.members)
}

// Values returns the set's members in deterministic (sorted) order.
func (vs *ValueSet) Values() []Value {
	out := make([]Value, len(vs.vector))
	copy(out, vs.vector)
	return out
}

// Contains reports whether v is a member of the set.
func (vs *ValueSet) Contains(v Value) bool {
	_, ok := vs.members[v]
	return ok
}

// CommonClass returns the shared class of every member, or nil if the
// set is empty or its members don't share one class (spec.md §4.1,
// "classof on an empty path against a ValueSet").
func (vs *ValueSet) CommonClass() *Class {
	var cla *Class
	for v := range vs.members {
		if cla == nil {
			cla = v.Class
			continue
		}
		if cla != v.Class {
			return nil
		}
	}
	return cla
}

// Subset reports whether every member of vs is also a member of other
// (spec.md §3, "ValueSet subtype rule").
func (vs *ValueSet) Subset(other *ValueSet) bool {
	for v := range vs.members {
		if _, ok := other.members[v]; !ok {
			return false
		}
	}
	return true
}

// Union returns a new ValueSet containing every member of vs or other.
func (vs *ValueSet) Union(other *ValueSet) *ValueSet {
	merged := make(map[Value]struct{}, len(vs.members)+len(other.members))
	for v := range vs.members {
		merged[v] = struct{}{}
	}
	for v := range other.members {
		merged[v] = struct{}{}
	}
	out := &ValueSet{members: merged}
	out.vector = out.sortedVector()
	return out
}

// Intersect returns a new ValueSet containing only members present in
// both vs and other.
func (vs *ValueSet) Intersect(other *ValueSet) *ValueSet {
	merged := make(map[Value]struct{})
	for v := range vs.members {
		if _, ok := other.members[v]; ok {
			merged[v] = struct{}{}
		}
	}
	out := &ValueSet{members: merged}
	out.vector = out.sortedVector()
	return out
}

// Equal reports whether vs and other contain exactly the same values.
func (vs *ValueSet) Equal(other *ValueSet) bool {
	if vs == other {
		return true
	}
	if other == nil || len(vs.members) != len(other.members) {
		return false
	}
	for v := range vs.members {
		if _, ok := other.members[v]; !ok {
			return false
		}
	}
	return true
}

// DebugString renders the set's sorted vector, for tests and trace logs.
func (vs *ValueSet) DebugString() string {
	parts := make([]string, len(vs.vector))
	for i, v := range vs.vector {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
