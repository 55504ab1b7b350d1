package ast

// -----------------------------------------------------------------------------
// Simple statements
// -----------------------------------------------------------------------------

// Declaration introduces a variable without an initial value.
// Examples: int x;  char buf[16];
type Declaration struct {
	BaseStmt
	Type      string
	Name      string
	IsArray   bool
	ArraySize Expr // nil when unsized or not an array
}

// Assignment stores a value. Type is set for an initialized declaration
// and empty for a reassignment of an existing variable.
// Examples: int x = 5;  x += 2;  a[i] = 0;
type Assignment struct {
	BaseStmt
	Type      string
	Name      string
	Index     []Expr // subscripts of a[i][j] = v, empty otherwise
	Op        string
	Value     Expr
	IsArray   bool
	ArraySize Expr
}

// DeclGroup holds the declarators of one comma-separated declaration.
// Example: int a, b = 2, c;
type DeclGroup struct {
	BaseStmt
	Decls []Stmt // *Declaration or *Assignment
}

// ExprStmt is an expression evaluated for its effect.
// Examples: i++;  f(x);
type ExprStmt struct {
	BaseStmt
	X Expr
}

// -----------------------------------------------------------------------------
// Compound statements
// -----------------------------------------------------------------------------

// Block is a brace-delimited statement list with its own scope.
type Block struct {
	BaseStmt
	Stmts []Stmt
}

// ElseIf is one "else if" arm of an IfStmt.
type ElseIf struct {
	BaseNode
	Cond Expr
	Body *Block
}

// IfStmt is if / else if / else.
type IfStmt struct {
	BaseStmt
	Cond    Expr
	Then    *Block
	ElseIfs []*ElseIf
	Else    *Block // nil without a final else
}

// CaseClause is one "case v:" or "default:" arm. Value is nil for default.
type CaseClause struct {
	BaseNode
	Value Expr
	Body  []Stmt
}

// SwitchStmt is switch (tag) { case ...: ... default: ... }.
type SwitchStmt struct {
	BaseStmt
	Tag     Expr
	Cases   []*CaseClause
	Default *CaseClause
}

// -----------------------------------------------------------------------------
// Loops
// -----------------------------------------------------------------------------

// WhileLoop is while (cond) body.
type WhileLoop struct {
	BaseStmt
	Cond Expr
	Body *Block
}

// DoWhileLoop is do body while (cond);
type DoWhileLoop struct {
	BaseStmt
	Body *Block
	Cond Expr
}

// ForLoop is for (init; cond; post) body. Every clause may be nil.
type ForLoop struct {
	BaseStmt
	Init Stmt
	Cond Expr
	Post Stmt
	Body *Block
}

// -----------------------------------------------------------------------------
// Jumps
// -----------------------------------------------------------------------------

// BreakStmt is break;
type BreakStmt struct {
	BaseStmt
}

// ContinueStmt is continue;
type ContinueStmt struct {
	BaseStmt
}

// ReturnStmt is return [value];
type ReturnStmt struct {
	BaseStmt
	Value Expr // nil for a bare return
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Stmt = (*Declaration)(nil)
	_ Stmt = (*Assignment)(nil)
	_ Stmt = (*DeclGroup)(nil)
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*Block)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*SwitchStmt)(nil)
	_ Stmt = (*WhileLoop)(nil)
	_ Stmt = (*DoWhileLoop)(nil)
	_ Stmt = (*ForLoop)(nil)
	_ Stmt = (*BreakStmt)(nil)
	_ Stmt = (*ContinueStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
	_ Node = (*ElseIf)(nil)
	_ Node = (*CaseClause)(nil)
)
