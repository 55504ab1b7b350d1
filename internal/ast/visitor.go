package ast

import "fmt"

// Walk traverses a tree in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: count variable references
//
//	count := 0
//	ast.Walk(stmt, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Variable); ok {
//	        count++
//	    }
//	    return true
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, c := range children(node) {
		Walk(c.node, fn)
	}
}

// Inspect is like Walk but also passes each node's parent (nil at the root).
func Inspect(node Node, fn func(node, parent Node) bool) {
	inspect(node, nil, fn)
}

func inspect(node, parent Node, fn func(node, parent Node) bool) {
	if node == nil || !fn(node, parent) {
		return
	}
	for _, c := range children(node) {
		inspect(c.node, node, fn)
	}
}

// NodeType returns the variant name of node, e.g. "Assignment".
func NodeType(node Node) string {
	switch node.(type) {
	case *Constant:
		return "Constant"
	case *Literal:
		return "Literal"
	case *Variable:
		return "Variable"
	case *BinaryExpr:
		return "BinaryExpression"
	case *UnaryExpr:
		return "UnaryExpression"
	case *Condition:
		return "Condition"
	case *ParenExpr:
		return "ParenExpression"
	case *IndexExpr:
		return "IndexExpression"
	case *SelectorExpr:
		return "SelectorExpression"
	case *FunctionCall:
		return "FunctionCall"
	case *InitList:
		return "InitList"
	case *BadExpr:
		return "BadExpression"
	case *Declaration:
		return "Declaration"
	case *Assignment:
		return "Assignment"
	case *DeclGroup:
		return "DeclarationGroup"
	case *ExprStmt:
		return "ExpressionStatement"
	case *Block:
		return "Block"
	case *IfStmt:
		return "IfStatement"
	case *ElseIf:
		return "ElseIf"
	case *SwitchStmt:
		return "SwitchStatement"
	case *CaseClause:
		return "CaseClause"
	case *WhileLoop:
		return "WhileLoop"
	case *DoWhileLoop:
		return "DoWhileLoop"
	case *ForLoop:
		return "ForLoop"
	case *BreakStmt:
		return "BreakStatement"
	case *ContinueStmt:
		return "ContinueStatement"
	case *ReturnStmt:
		return "ReturnStatement"
	case *FunctionDecl:
		return "FunctionDeclaration"
	case *Param:
		return "Parameter"
	case *StructDecl:
		return "StructDeclaration"
	case *EnumDecl:
		return "EnumDeclaration"
	case *Enumerator:
		return "Enumerator"
	case *ClassDecl:
		return "ClassDeclaration"
	case *ImportDecl:
		return "ImportDeclaration"
	case *PreprocessorDirective:
		return "PreprocessorDirective"
	default:
		return fmt.Sprintf("%T", node)
	}
}

// child is a labelled edge from a node to one of its children.
type child struct {
	label string
	node  Node
}

type childList []child

func (cl *childList) expr(label string, e Expr) {
	if e != nil {
		*cl = append(*cl, child{label, e})
	}
}

func (cl *childList) stmt(label string, s Stmt) {
	if s != nil {
		*cl = append(*cl, child{label, s})
	}
}

func (cl *childList) block(label string, b *Block) {
	if b != nil {
		*cl = append(*cl, child{label, b})
	}
}

func (cl *childList) exprs(label string, es []Expr) {
	for _, e := range es {
		cl.expr(label, e)
	}
}

func (cl *childList) stmts(label string, ss []Stmt) {
	for _, s := range ss {
		cl.stmt(label, s)
	}
}

// children lists the direct children of node in source order.
func children(node Node) []child {
	var cl childList
	switch n := node.(type) {
	case *Constant, *Literal, *Variable, *BadExpr:
		// leaves

	case *BinaryExpr:
		cl.expr("left", n.Left)
		cl.expr("right", n.Right)
	case *Condition:
		cl.expr("left", n.Left)
		cl.expr("right", n.Right)
	case *UnaryExpr:
		cl.expr("operand", n.Operand)
	case *ParenExpr:
		cl.expr("", n.X)
	case *IndexExpr:
		cl.expr("array", n.Array)
		cl.expr("index", n.Index)
	case *SelectorExpr:
		cl.expr("", n.X)
	case *FunctionCall:
		cl.exprs("arg", n.Args)
	case *InitList:
		cl.exprs("elem", n.Elems)

	case *Declaration:
		cl.expr("size", n.ArraySize)
	case *Assignment:
		cl.expr("size", n.ArraySize)
		cl.exprs("index", n.Index)
		cl.expr("value", n.Value)
	case *DeclGroup:
		cl.stmts("", n.Decls)
	case *ExprStmt:
		cl.expr("", n.X)
	case *Block:
		cl.stmts("", n.Stmts)
	case *IfStmt:
		cl.expr("cond", n.Cond)
		cl.block("then", n.Then)
		for _, ei := range n.ElseIfs {
			cl = append(cl, child{"", ei})
		}
		cl.block("else", n.Else)
	case *ElseIf:
		cl.expr("cond", n.Cond)
		cl.block("then", n.Body)
	case *SwitchStmt:
		cl.expr("tag", n.Tag)
		for _, c := range n.Cases {
			cl = append(cl, child{"", c})
		}
		if n.Default != nil {
			cl = append(cl, child{"", n.Default})
		}
	case *CaseClause:
		cl.expr("value", n.Value)
		cl.stmts("", n.Body)
	case *WhileLoop:
		cl.expr("cond", n.Cond)
		cl.block("body", n.Body)
	case *DoWhileLoop:
		cl.block("body", n.Body)
		cl.expr("cond", n.Cond)
	case *ForLoop:
		cl.stmt("init", n.Init)
		cl.expr("cond", n.Cond)
		cl.stmt("post", n.Post)
		cl.block("body", n.Body)
	case *BreakStmt, *ContinueStmt:
		// leaves
	case *ReturnStmt:
		cl.expr("value", n.Value)

	case *FunctionDecl:
		for _, p := range n.Params {
			cl = append(cl, child{"param", p})
		}
		cl.block("body", n.Body)
	case *Param:
		// leaf
	case *StructDecl:
		for _, m := range n.Members {
			cl = append(cl, child{"member", m})
		}
	case *EnumDecl:
		for _, e := range n.Enumerators {
			cl = append(cl, child{"", e})
		}
	case *Enumerator:
		cl.expr("value", n.Value)
	case *ClassDecl:
		cl.stmts("member", n.Members)
	case *ImportDecl, *PreprocessorDirective:
		// leaves
	}
	return cl
}
