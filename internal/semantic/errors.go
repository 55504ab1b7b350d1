// Package semantic holds the scope model and the nominal type rules used
// while parsing toy C-family programs.
//
// The parser drives a SymbolTable as it descends into blocks:
//   - Declarations go into the innermost scope; shadowing is allowed
//   - Assignments mark the innermost visible declaration initialized
//   - Uses of undeclared or unassigned names are reported
//
// Types are plain names grouped into classes (integer, decimal, char,
// String, boolean). Anything else is unknown and passes every check.
package semantic

// Messages for semantic diagnostics.
const (
	ErrAlreadyDeclared = "variable %q is already declared in this scope"
	ErrUndeclared      = "variable %q is not declared"
	ErrUninitialized   = "variable %q is used before being assigned a value"
	ErrTypeMismatch    = "type mismatch: cannot assign %s to %s %q"
	ErrVoidVariable    = "variable %q declared void"
	ErrBadOperand      = "bad operand: operator %q cannot be applied to %s and %s"
	ErrBadUnary        = "bad operand: operator %q cannot be applied to %s"
	ErrArrayNotIndexed = "array %q used without an index"
	ErrCharLiteral     = "invalid character literal %s: expected exactly one character"

	ErrAssignInCondition = "invalid operator '=' in condition, did you mean '=='"
	ErrConstantCondition = "comparison between two constants is always true or always false"
	ErrCompareMismatch   = "datatypes mismatch: cannot compare %s with %s"
	ErrStringEquality    = "strings compared with %q, use equals() instead"
	ErrNotBoolean        = "condition of type %s is not boolean"

	ErrMissingBreak   = "expected 'break;' at the end of %s"
	ErrDuplicateCase  = "duplicate case value %s"
	ErrDuplicateLabel = "multiple default labels in one switch"

	ErrBreakOutside    = "break statement must be inside a loop or switch"
	ErrContinueOutside = "continue statement must be inside a loop"
	ErrReturnOutside   = "return statement must be inside a function"
	ErrReturnValue     = "cannot return %s from function %q returning %s"
	ErrReturnMissing   = "function %q must return a %s value"
	ErrNoReturn        = "control reaches the end of non-void function %q returning %s"

	ErrFuncRedefined   = "function %q already defined"
	ErrFuncConflict    = "conflicting declaration of function %q"
	ErrArity           = "function %q expects %s, got %d"
	ErrDuplicateMember = "duplicate member %q in %s %q"
)
