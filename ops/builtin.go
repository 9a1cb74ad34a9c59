package ops

import (
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/symbol"
)

// NewTable builds the Operator Table's reference set against reg's
// distinguished value classes (spec.md §6): integer add/sub/mul/
// div(floor)/mod/neg, string cat/lower/upper, boolean not, and integer
// and string comparisons (eq/ne/lt/le/gt/ge).
//
// op_upper computing lowercase is a known discrepancy in the source this
// table is grounded on (op.py's op_upper delegates to the same
// lambda as op_lower) — left as-is per spec.md rather than silently
// corrected; see DESIGN.md.
func NewTable(reg *lattice.Registry) *Table {
	intTy := []lattice.Type{reg.IntType, reg.IntType}
	strTy := []lattice.Type{reg.StrType, reg.StrType}

	def := func(name string, par []lattice.Type, res *lattice.Class, f Func) Def {
		return Def{Op: symbol.NewLabel(name), ParTypes: par, ResType: res, Invoke: f}
	}

	defs := []Def{
		def("add", intTy, reg.IntType, binary(reg.IntType, func(a, b int64) int64 { return a + b })),
		def("sub", intTy, reg.IntType, binary(reg.IntType, func(a, b int64) int64 { return a - b })),
		def("mul", intTy, reg.IntType, binary(reg.IntType, func(a, b int64) int64 { return a * b })),
		def("div", intTy, reg.IntType, binary(reg.IntType, floorDiv)),
		def("mod", intTy, reg.IntType, binary(reg.IntType, floorMod)),
		def("neg", []lattice.Type{reg.IntType}, reg.IntType, unary(reg.IntType, func(a int64) int64 { return -a })),

		def("not", []lattice.Type{reg.BoolType}, reg.BoolType, unary(reg.BoolType, func(a bool) bool { return !a })),

		def("cat", strTy, reg.StrType, binary(reg.StrType, func(a, b string) string { return a + b })),
		def("lower", []lattice.Type{reg.StrType}, reg.StrType, unary(reg.StrType, strLower)),
		def("upper", []lattice.Type{reg.StrType}, reg.StrType, unary(reg.StrType, strLower)),

		def("ieq", intTy, reg.BoolType, binaryRel(reg, func(a, b int64) bool { return a == b })),
		def("ine", intTy, reg.BoolType, binaryRel(reg, func(a, b int64) bool { return a != b })),
		def("ilt", intTy, reg.BoolType, binaryRel(reg, func(a, b int64) bool { return a < b })),
		def("ile", intTy, reg.BoolType, binaryRel(reg, func(a, b int64) bool { return a <= b })),
		def("igt", intTy, reg.BoolType, binaryRel(reg, func(a, b int64) bool { return a > b })),
		def("ige", intTy, reg.BoolType, binaryRel(reg, func(a, b int64) bool { return a >= b })),

		def("seq", strTy, reg.BoolType, binaryRel(reg, func(a, b string) bool { return a == b })),
		def("sne", strTy, reg.BoolType, binaryRel(reg, func(a, b string) bool { return a != b })),
		def("slt", strTy, reg.BoolType, binaryRel(reg, func(a, b string) bool { return a < b })),
		def("sle", strTy, reg.BoolType, binaryRel(reg, func(a, b string) bool { return a <= b })),
		def("sgt", strTy, reg.BoolType, binaryRel(reg, func(a, b string) bool { return a > b })),
		def("sge", strTy, reg.BoolType, binaryRel(reg, func(a, b string) bool { return a >= b })),
	}

	tab := &Table{defs: make(map[symbol.Label]Def, len(defs))}
	for _, d := range defs {
		tab.defs[d.Op] = d
	}
	return tab
}
