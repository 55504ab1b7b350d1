package ast

import "strings"

// -----------------------------------------------------------------------------
// Leaves
// -----------------------------------------------------------------------------

// Constant is a numeric literal.
// Examples: 42, 3.14, 0x1F, 10UL
type Constant struct {
	BaseExpr
	Value string // source text
}

// Literal is a quoted string, a character, or a boolean.
// Examples: "abc", 'c', true
type Literal struct {
	BaseExpr
	Value string // source text including delimiters
}

// Variable is a reference to a named variable, parameter or enumerator.
type Variable struct {
	BaseExpr
	Name string
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// BinaryExpr is an infix operation, including assignment and comma.
// Examples: a + b, x = y, i << 2, a && b
type BinaryExpr struct {
	BaseExpr
	Left  Expr
	Op    string
	Right Expr
}

// UnaryExpr is a prefix or postfix operation.
// Examples: -x, !done, ++i, i--
type UnaryExpr struct {
	BaseExpr
	Op      string
	Operand Expr
	Postfix bool
}

// Condition is a comparison used as a branch or loop test.
// Examples: a == 1, i < n
type Condition struct {
	BaseExpr
	Left  Expr
	Op    string
	Right Expr
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	BaseExpr
	X Expr
}

// -----------------------------------------------------------------------------
// Compound
// -----------------------------------------------------------------------------

// IndexExpr is an array element reference: a[i].
type IndexExpr struct {
	BaseExpr
	Array Expr
	Index Expr
}

// FunctionCall is a call through a bare or dotted name.
// Examples: f(1, 2), System.out.println("hi")
type FunctionCall struct {
	BaseExpr
	Path []string
	Args []Expr
}

// Name returns the dotted call target.
func (c *FunctionCall) Name() string {
	return strings.Join(c.Path, ".")
}

// Callee returns the final element of the call path.
func (c *FunctionCall) Callee() string {
	if len(c.Path) == 0 {
		return ""
	}
	return c.Path[len(c.Path)-1]
}

// SelectorExpr is a field or member access: p.x, args.length.
type SelectorExpr struct {
	BaseExpr
	X     Expr
	Field string
}

// InitList is a brace-enclosed array initializer: {1, 2, 3}.
type InitList struct {
	BaseExpr
	Elems []Expr
}

// BadExpr stands in for an expression that failed to parse.
type BadExpr struct {
	BaseExpr
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Expr = (*Constant)(nil)
	_ Expr = (*Literal)(nil)
	_ Expr = (*Variable)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*UnaryExpr)(nil)
	_ Expr = (*Condition)(nil)
	_ Expr = (*ParenExpr)(nil)
	_ Expr = (*IndexExpr)(nil)
	_ Expr = (*FunctionCall)(nil)
	_ Expr = (*SelectorExpr)(nil)
	_ Expr = (*InitList)(nil)
	_ Expr = (*BadExpr)(nil)
)
