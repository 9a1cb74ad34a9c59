package eval

import (
	"fmt"
	"log/slog"

	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/ops"
	"github.com/wke/ogpm/state"
)

// Interp runs ast statements and expressions against a single
// state.Graph, consulting table for operator invocations and factory for
// any node minted outside sg's own methods (pattern-graph work inside
// Match evaluation).
type Interp struct {
	sg      *state.Graph
	table   *ops.Table
	reg     *lattice.Registry
	factory *layout.NodeFactory
	logger  *slog.Logger

	out func(string)
}

// Option configures an Interp's construction.
type Option func(*Interp)

// WithLogger enables trace logging for evaluation steps.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interp) { i.logger = logger }
}

// WithOutput overrides where Print statements write their rendered line
// (fmt.Println to os.Stdout by default).
func WithOutput(out func(string)) Option {
	return func(i *Interp) { i.out = out }
}

// New builds an Interp over sg, table, reg, and factory (spec.md §5:
// these are always explicit arguments, never package globals).
func New(sg *state.Graph, table *ops.Table, reg *lattice.Registry, factory *layout.NodeFactory, opts ...Option) *Interp {
	i := &Interp{sg: sg, table: table, reg: reg, factory: factory}
	for _, opt := range opts {
		opt(i)
	}
	if i.out == nil {
		i.out = defaultPrint
	}
	return i
}

func defaultPrint(line string) {
	fmt.Println(line)
}

func valueString(sg *state.Graph, cla *lattice.Class, n layout.Node) string {
	if cla.IsNullType() {
		return "null"
	}
	if cla.IsValueType() {
		v, _ := sg.ValueOf(n)
		return v.String()
	}
	return cla.Tag().String() + "@(" + n.String() + ")"
}
