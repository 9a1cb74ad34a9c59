// Package ogpm runs a previously parsed and scoped Object Graph Pattern
// Matching program — type-checking it, then evaluating it statement by
// statement against a fresh state graph (spec.md §1: parsing a concrete
// surface syntax is out of scope; callers hand in an already-built
// ast.Program).
//
// # Architecture
//
// Foundation tier (no internal dependencies): symbol, location, diag,
// immutable.
//
// Core tier: lattice (type lattice + class registry), layout (labeled
// graph kernel), bidict, patternast (pattern AST + graph builder), match
// (subtype-aware graph matching), ops (operator table), state (state
// graph), ast (program syntax).
//
// Interpretation tier: typecheck (static checker), eval (small-step
// evaluator).
//
// # Entry point
//
//	interp := ogpm.New(ogpm.WithLogger(logger))
//	// register program classes against interp.Registry(), build the
//	// program's ast.Program against interp.Factory(), then:
//	diags, err := interp.Run(ctx, program)
//	if err != nil { ... } // unexpected/internal failure, not a program error
//	if !diags.OK() { ... } // static type errors, reported as diag.Issue
package ogpm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wke/ogpm/ast"
	"github.com/wke/ogpm/diag"
	"github.com/wke/ogpm/eval"
	"github.com/wke/ogpm/internal/trace"
	"github.com/wke/ogpm/lattice"
	"github.com/wke/ogpm/layout"
	"github.com/wke/ogpm/ops"
	"github.com/wke/ogpm/state"
	"github.com/wke/ogpm/typecheck"
)

// Interpreter holds everything one interpretation run needs: the class
// registry a program's classes and patterns are checked and evaluated
// against, the operator table built over that same registry, the shared
// node factory, and a run id threaded into every trace log line for
// correlating a single run's output (spec.md §10.5).
type Interpreter struct {
	reg     *lattice.Registry
	table   *ops.Table
	factory *layout.NodeFactory
	logger  *slog.Logger
	runID   uuid.UUID
	out     func(string)
}

// Option configures an Interpreter's construction.
type Option func(*Interpreter)

// WithLogger attaches a logger; trace output is silent without one.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) { i.logger = logger }
}

// WithRunID overrides the generated run id, e.g. to correlate with an
// external request id.
func WithRunID(id uuid.UUID) Option {
	return func(i *Interpreter) { i.runID = id }
}

// WithOutput overrides where a running program's Print statements write
// their rendered line (fmt.Println to os.Stdout by default).
func WithOutput(out func(string)) Option {
	return func(i *Interpreter) { i.out = out }
}

// New builds an Interpreter around a fresh lattice.Registry: every run
// gets its own registry and node factory, matching spec.md §5's "the
// class registry... scoped to an interpreter instance" requirement.
func New(opts ...Option) *Interpreter {
	reg := lattice.NewRegistry()
	i := &Interpreter{
		reg:     reg,
		table:   ops.NewTable(reg),
		factory: layout.NewNodeFactory(),
		runID:   uuid.New(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Registry returns the interpreter's class registry, so a caller can
// register program classes before type-checking or evaluating against
// it.
func (i *Interpreter) Registry() *lattice.Registry {
	return i.reg
}

// Table returns the interpreter's operator table.
func (i *Interpreter) Table() *ops.Table {
	return i.table
}

// Factory returns the interpreter's shared node factory.
func (i *Interpreter) Factory() *layout.NodeFactory {
	return i.factory
}

func (i *Interpreter) runAttrs() []slog.Attr {
	return []slog.Attr{slog.String("run_id", i.runID.String())}
}

// issuer is implemented by every structural/static error type in the
// core and interpretation tiers (typecheck.Error, lattice.LatticeError,
// match.Error, patternast.BuildError), letting Run collect any of them
// as a diag.Issue without a type switch per package (spec.md §10.1).
type issuer interface {
	Issue() diag.Issue
}

// Run type-checks prog against the interpreter's registry and, if
// type-checking succeeds, evaluates it against a fresh state graph
// (spec.md §1, §4.5, §4.6).
//
// The returned diag.Result carries static type errors as content
// diagnostics; a non-nil error return means something unexpected
// happened (an internal invariant violation, or a dynamic runtime
// failure such as an undefined variable that state.Graph surfaces as a
// plain Go error — spec.md §10.1 draws that line at type-checking,
// not at evaluation).
func (i *Interpreter) Run(ctx context.Context, prog *ast.Program) (diag.Result, error) {
	op := trace.Begin(ctx, i.logger, "ogpm.interpreter.run", i.runAttrs()...)
	var err error
	defer func() { op.End(err) }()

	checker := typecheck.New(i.reg, i.table, i.factory)
	if tcErr := checker.Program(prog); tcErr != nil {
		var iss issuer
		if errors.As(tcErr, &iss) {
			collector := diag.NewCollectorUnlimited()
			collector.Collect(iss.Issue())
			return collector.Result(), nil
		}
		err = tcErr
		return diag.Result{}, err
	}

	evalOpts := []eval.Option{eval.WithLogger(i.logger)}
	if i.out != nil {
		evalOpts = append(evalOpts, eval.WithOutput(i.out))
	}
	sg := state.New(i.factory, i.reg, state.WithLogger(i.logger))
	interp := eval.New(sg, i.table, i.reg, i.factory, evalOpts...)
	if evalErr := interp.Program(ctx, prog); evalErr != nil {
		err = evalErr
		return diag.OK(), err
	}

	return diag.OK(), nil
}
