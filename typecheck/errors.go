package typecheck

import "github.com/wke/ogpm/diag"

// ErrorKind classifies a Error (spec.md §4.5 / §7).
type ErrorKind uint8

const (
	// NodeType: a pattern graph node carries no declared type.
	NodeType ErrorKind = iota
	// NodeSubtype: an attribute node's type is not a subtype of the
	// parent's declared attribute type.
	NodeSubtype
	// IncompatibleTypes: a Match statement's scrutinee type and a case's
	// pattern type share no subtype relation in either direction.
	IncompatibleTypes
	// UndefVar: an expression referenced a variable with no binding in
	// scope.
	UndefVar
	// ParentObject: AttrExpr's base expression typed to something other
	// than a Class.
	ParentObject
	// Attr: AttrExpr addressed a label absent from its base's attrs.
	Attr
	// Op: OpExpr named an operator absent from the Operator Table.
	Op
	// OpArgLen: OpExpr's argument count does not match the operator's
	// declared arity.
	OpArgLen
	// OpArgType: one of OpExpr's arguments does not match its declared
	// parameter type.
	OpArgType
	// VarEnd: a VarEnd closed a scope frame it did not open, or closed
	// past the block's own base frame.
	VarEnd
	// LeftExpr: Assign's left side was not a VarExpr or AttrExpr.
	LeftExpr
	// Class: NewExpr named no class.
	Class
	// AssignType: Assign's right-hand type is not a subtype of the left
	// side's declared type.
	AssignType
	// CondType: If/While's condition did not type to BoolType.
	CondType
	// Scope: a Block's VarDecl/VarEnd statements left the block's
	// environment different from the one it started with.
	Scope
	// PrintArgType is reserved for a constraint the source declares an
	// exception class for but never actually enforces — Print performs
	// no argument type check (tc_print just type-checks each argument
	// for its own side effects). Never raised; kept for parity with the
	// declared taxonomy.
	PrintArgType
	// BoolType: AndExpr/OrExpr's operand did not type to BoolType.
	BoolType
)

func (k ErrorKind) String() string {
	switch k {
	case NodeType:
		return "pattern node has no declared type"
	case NodeSubtype:
		return "attribute node type is not a subtype of its declared type"
	case IncompatibleTypes:
		return "match scrutinee and case pattern share no subtype relation"
	case UndefVar:
		return "undefined variable"
	case ParentObject:
		return "attribute base is not a class-typed object"
	case Attr:
		return "undefined attribute"
	case Op:
		return "undefined operator"
	case OpArgLen:
		return "operator argument count mismatch"
	case OpArgType:
		return "operator argument type mismatch"
	case VarEnd:
		return "unbalanced variable declaration end"
	case LeftExpr:
		return "assignment target is not a variable or attribute"
	case Class:
		return "new expression names no class"
	case AssignType:
		return "assignment value is not a subtype of its target"
	case CondType:
		return "condition is not boolean-typed"
	case Scope:
		return "block left its enclosing scope unbalanced"
	case PrintArgType:
		return "print argument type error"
	case BoolType:
		return "operand is not boolean-typed"
	default:
		return "unknown type-checking error"
	}
}

// Error reports a static type-checking failure.
type Error struct {
	Kind ErrorKind
}

func (e *Error) Error() string {
	return e.Kind.String()
}

// Code returns the stable diag.Code identifying e's kind, so a caller
// that collects type errors as diagnostics (spec.md §10.1) never needs a
// second switch over ErrorKind.
func (e *Error) Code() diag.Code {
	switch e.Kind {
	case NodeType:
		return diag.E_TC_NODE_TYPE
	case NodeSubtype:
		return diag.E_TC_NODE_SUBTYPE
	case IncompatibleTypes:
		return diag.E_TC_INCOMPATIBLE_TYPES
	case UndefVar:
		return diag.E_TC_UNDEF_VAR
	case ParentObject:
		return diag.E_TC_PARENT_OBJECT
	case Attr:
		return diag.E_TC_ATTR
	case Op:
		return diag.E_TC_OP
	case OpArgLen:
		return diag.E_TC_OP_ARG_LEN
	case OpArgType:
		return diag.E_TC_OP_ARG_TYPE
	case VarEnd:
		return diag.E_TC_VAR_END
	case LeftExpr:
		return diag.E_TC_LEFT_EXPR
	case Class:
		return diag.E_TC_CLASS
	case AssignType:
		return diag.E_TC_ASSIGN_TYPE
	case CondType:
		return diag.E_TC_COND_TYPE
	case Scope:
		return diag.E_TC_SCOPE
	case PrintArgType:
		return diag.E_TC_PRINT_ARG_TYPE
	case BoolType:
		return diag.E_TC_BOOL_TYPE
	default:
		return diag.E_INTERNAL
	}
}

// Issue renders e as a diag.Issue at Error severity (spec.md §10.1: type
// errors are content problems reported through diag, not Go errors).
func (e *Error) Issue() diag.Issue {
	return diag.NewIssue(diag.Error, e.Code(), e.Kind.String()).Build()
}
