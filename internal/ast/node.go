// Package ast defines the syntax tree produced by the parser.
//
// The node set is closed: Expr and Stmt carry unexported marker methods,
// so every consumer can switch exhaustively over the concrete types.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions, each with an inferred data type
//	│   ├── Constant, Literal, Variable - leaves
//	│   ├── BinaryExpr, UnaryExpr, Condition, ParenExpr - operations
//	│   ├── IndexExpr, SelectorExpr, FunctionCall, InitList - compound
//	│   └── BadExpr - placeholder after a syntax error
//	└── Stmt (interface)
//	    ├── Declaration, Assignment, DeclGroup, ExprStmt - simple
//	    ├── Block, IfStmt, SwitchStmt - compound
//	    ├── WhileLoop, DoWhileLoop, ForLoop - loops
//	    ├── BreakStmt, ContinueStmt, ReturnStmt - jumps
//	    └── FunctionDecl, StructDecl, EnumDecl, ClassDecl,
//	        ImportDecl, PreprocessorDirective - top-level
package ast

import "github.com/kolkov/toyc/internal/token"

// Node is implemented by every syntax tree node.
type Node interface {
	// Pos returns the position of the node's first token.
	Pos() token.Position

	// End returns the position of the node's last token.
	End() token.Position
}

// Expr is a node that produces a value.
type Expr interface {
	Node

	// DataType returns the inferred type name, or "" when unknown.
	DataType() string

	exprNode()
}

// Stmt is a node that performs an action or declares something.
type Stmt interface {
	Node
	stmtNode()
}

// BaseExpr carries the position and inferred type shared by expressions.
type BaseExpr struct {
	StartPos token.Position
	EndPos   token.Position
	Type     string
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) End() token.Position { return b.EndPos }
func (b *BaseExpr) DataType() string    { return b.Type }
func (b *BaseExpr) exprNode()           {}

// BaseStmt carries the position shared by statements.
type BaseStmt struct {
	StartPos token.Position
	EndPos   token.Position
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) End() token.Position { return b.EndPos }
func (b *BaseStmt) stmtNode()           {}

// BaseNode carries the position of auxiliary nodes such as case
// clauses and parameters, which are neither expressions nor statements.
type BaseNode struct {
	StartPos token.Position
	EndPos   token.Position
}

func (b *BaseNode) Pos() token.Position { return b.StartPos }
func (b *BaseNode) End() token.Position { return b.EndPos }

// IsConstant reports whether e is a numeric constant or a quoted or
// boolean literal.
func IsConstant(e Expr) bool {
	switch e.(type) {
	case *Constant, *Literal:
		return true
	default:
		return false
	}
}

// IsLValue reports whether e may appear on the left of an assignment.
func IsLValue(e Expr) bool {
	switch e := e.(type) {
	case *Variable, *IndexExpr, *SelectorExpr:
		return true
	case *ParenExpr:
		return IsLValue(e.X)
	case *UnaryExpr:
		return e.Op == "*" && !e.Postfix
	default:
		return false
	}
}

// MakeBaseExpr creates a BaseExpr spanning start to end.
func MakeBaseExpr(start, end token.Position, typ string) BaseExpr {
	return BaseExpr{StartPos: start, EndPos: end, Type: typ}
}

// MakeBaseNode creates a BaseNode spanning start to end.
func MakeBaseNode(start, end token.Position) BaseNode {
	return BaseNode{StartPos: start, EndPos: end}
}

// MakeBaseStmt creates a BaseStmt spanning start to end.
func MakeBaseStmt(start, end token.Position) BaseStmt {
	return BaseStmt{StartPos: start, EndPos: end}
}
