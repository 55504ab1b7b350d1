package ast

// Param is one function parameter.
type Param struct {
	BaseNode
	Type    string
	Name    string
	IsArray bool
}

// FunctionDecl is a function prototype or definition.
// Examples:
//   - int add(int a, int b);          -> Body is nil
//   - void greet(char s[]) { ... }    -> Body holds the definition
type FunctionDecl struct {
	BaseStmt
	ReturnType string
	Name       string
	Params     []*Param
	Body       *Block
}

// IsPrototype reports whether the declaration has no body.
func (f *FunctionDecl) IsPrototype() bool {
	return f.Body == nil
}

// StructDecl is struct name { members }; Keyword is "struct" or "union".
type StructDecl struct {
	BaseStmt
	Keyword string
	Name    string
	Members []*Declaration
}

// Enumerator is one enum constant with an optional explicit value.
type Enumerator struct {
	BaseNode
	Name  string
	Value Expr
}

// EnumDecl is enum name { A, B = 2, C };
type EnumDecl struct {
	BaseStmt
	Name        string
	Enumerators []*Enumerator
}

// ClassDecl is a Java-style class wrapper around fields and methods.
type ClassDecl struct {
	BaseStmt
	Name    string
	Members []Stmt
}

// ImportDecl is a Java-style import of a dotted path.
type ImportDecl struct {
	BaseStmt
	Path string
}

// PreprocessorDirective is one "#name arg" line.
// For #include, File holds the target without delimiters and System is
// true for the <file> form.
type PreprocessorDirective struct {
	BaseStmt
	Name   string
	Arg    string
	File   string
	System bool
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Stmt = (*FunctionDecl)(nil)
	_ Stmt = (*StructDecl)(nil)
	_ Stmt = (*EnumDecl)(nil)
	_ Stmt = (*ClassDecl)(nil)
	_ Stmt = (*ImportDecl)(nil)
	_ Stmt = (*PreprocessorDirective)(nil)
	_ Node = (*Param)(nil)
	_ Node = (*Enumerator)(nil)
)
