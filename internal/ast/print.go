package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer renders syntax trees. Print produces source-like text with
// nested operations parenthesized; Dump produces an indented node tree.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes node as source-like text.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// Dump writes node as an indented tree, one node per line.
func (p *Printer) Dump(node Node) error {
	p.dump("", node)
	return p.err
}

// String returns the source-like rendering of node.
func String(node Node) string {
	var sb strings.Builder
	_ = NewPrinter(&sb).Print(node)
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) printNode(node Node) {
	switch n := node.(type) {
	case nil:
		p.printf("<nil>")
	case Expr:
		p.printExpr(n)
	case Stmt:
		p.printStmt(n)
	default:
		p.printf("<%T>", node)
	}
}

func (p *Printer) printExpr(e Expr) {
	if e == nil {
		p.printf("<nil>")
		return
	}

	switch n := e.(type) {
	case *Constant:
		p.printf("%s", n.Value)
	case *Literal:
		p.printf("%s", n.Value)
	case *Variable:
		p.printf("%s", n.Name)
	case *BinaryExpr:
		p.printOperand(n.Left)
		if n.Op == "," {
			p.printf(", ")
		} else {
			p.printf(" %s ", n.Op)
		}
		p.printOperand(n.Right)
	case *Condition:
		p.printOperand(n.Left)
		p.printf(" %s ", n.Op)
		p.printOperand(n.Right)
	case *UnaryExpr:
		if n.Postfix {
			p.printOperand(n.Operand)
			p.printf("%s", n.Op)
		} else {
			p.printf("%s", n.Op)
			p.printOperand(n.Operand)
		}
	case *ParenExpr:
		p.printf("(")
		p.printExpr(n.X)
		p.printf(")")
	case *IndexExpr:
		p.printExpr(n.Array)
		p.printf("[")
		p.printExpr(n.Index)
		p.printf("]")
	case *SelectorExpr:
		p.printExpr(n.X)
		p.printf(".%s", n.Field)
	case *FunctionCall:
		p.printf("%s(", n.Name())
		p.printList(n.Args)
		p.printf(")")
	case *InitList:
		p.printf("{")
		p.printList(n.Elems)
		p.printf("}")
	case *BadExpr:
		p.printf("<bad>")
	default:
		p.printf("<%T>", e)
	}
}

// printOperand parenthesizes nested operations so grouping is visible.
func (p *Printer) printOperand(e Expr) {
	switch e.(type) {
	case *BinaryExpr, *Condition:
		p.printf("(")
		p.printExpr(e)
		p.printf(")")
	default:
		p.printExpr(e)
	}
}

func (p *Printer) printList(es []Expr) {
	for i, e := range es {
		if i > 0 {
			p.printf(", ")
		}
		p.printExpr(e)
	}
}

func (p *Printer) printStmt(s Stmt) {
	if s == nil {
		p.printf("<nil>")
		return
	}

	switch n := s.(type) {
	case *Declaration:
		p.printf("%s %s", n.Type, n.Name)
		p.printArraySuffix(n.IsArray, n.ArraySize)
		p.printf(";")

	case *Assignment:
		if n.Type != "" {
			p.printf("%s ", n.Type)
		}
		p.printf("%s", n.Name)
		p.printArraySuffix(n.IsArray, n.ArraySize)
		p.printSubscripts(n.Index)
		p.printf(" %s ", n.Op)
		p.printExpr(n.Value)
		p.printf(";")

	case *DeclGroup:
		for i, d := range n.Decls {
			if i > 0 {
				p.printf(" ")
			}
			p.printStmt(d)
		}

	case *ExprStmt:
		p.printExpr(n.X)
		p.printf(";")

	case *Block:
		p.printBlock(n)

	case *IfStmt:
		p.printf("if (")
		p.printExpr(n.Cond)
		p.printf(") ")
		p.printBlock(n.Then)
		for _, ei := range n.ElseIfs {
			p.printf(" else if (")
			p.printExpr(ei.Cond)
			p.printf(") ")
			p.printBlock(ei.Body)
		}
		if n.Else != nil {
			p.printf(" else ")
			p.printBlock(n.Else)
		}

	case *SwitchStmt:
		p.printf("switch (")
		p.printExpr(n.Tag)
		p.printf(") {\n")
		for _, c := range n.Cases {
			p.printCase(c)
		}
		if n.Default != nil {
			p.printCase(n.Default)
		}
		p.writeIndent()
		p.printf("}")

	case *WhileLoop:
		p.printf("while (")
		p.printExpr(n.Cond)
		p.printf(") ")
		p.printBlock(n.Body)

	case *DoWhileLoop:
		p.printf("do ")
		p.printBlock(n.Body)
		p.printf(" while (")
		p.printExpr(n.Cond)
		p.printf(");")

	case *ForLoop:
		p.printf("for (")
		if n.Init != nil {
			p.printStmt(n.Init)
		} else {
			p.printf(";")
		}
		if n.Cond != nil {
			p.printf(" ")
			p.printExpr(n.Cond)
		}
		p.printf(";")
		if n.Post != nil {
			p.printf(" ")
			p.printSimple(n.Post)
		}
		p.printf(") ")
		p.printBlock(n.Body)

	case *BreakStmt:
		p.printf("break;")

	case *ContinueStmt:
		p.printf("continue;")

	case *ReturnStmt:
		p.printf("return")
		if n.Value != nil {
			p.printf(" ")
			p.printExpr(n.Value)
		}
		p.printf(";")

	case *FunctionDecl:
		p.printf("%s %s(", n.ReturnType, n.Name)
		for i, prm := range n.Params {
			if i > 0 {
				p.printf(", ")
			}
			p.printf("%s %s", prm.Type, prm.Name)
			if prm.IsArray {
				p.printf("[]")
			}
		}
		p.printf(")")
		if n.Body == nil {
			p.printf(";")
		} else {
			p.printf(" ")
			p.printBlock(n.Body)
		}

	case *StructDecl:
		p.printf("%s %s {\n", structKeyword(n), n.Name)
		p.indent++
		for _, m := range n.Members {
			p.writeIndent()
			p.printStmt(m)
			p.printf("\n")
		}
		p.indent--
		p.writeIndent()
		p.printf("};")

	case *EnumDecl:
		p.printf("enum %s { ", n.Name)
		for i, e := range n.Enumerators {
			if i > 0 {
				p.printf(", ")
			}
			p.printf("%s", e.Name)
			if e.Value != nil {
				p.printf(" = ")
				p.printExpr(e.Value)
			}
		}
		p.printf(" };")

	case *ClassDecl:
		p.printf("class %s {\n", n.Name)
		p.indent++
		for _, m := range n.Members {
			p.writeIndent()
			p.printStmt(m)
			p.printf("\n")
		}
		p.indent--
		p.writeIndent()
		p.printf("}")

	case *ImportDecl:
		p.printf("import %s;", n.Path)

	case *PreprocessorDirective:
		p.printf("#%s", n.Name)
		if n.Arg != "" {
			p.printf(" %s", n.Arg)
		}

	default:
		p.printf("<%T>", s)
	}
}

// printSimple prints a for-loop post clause without its trailing ';'.
func (p *Printer) printSimple(s Stmt) {
	switch n := s.(type) {
	case *ExprStmt:
		p.printExpr(n.X)
	case *Assignment:
		p.printf("%s", n.Name)
		p.printSubscripts(n.Index)
		p.printf(" %s ", n.Op)
		p.printExpr(n.Value)
	default:
		p.printStmt(s)
	}
}

func (p *Printer) printSubscripts(index []Expr) {
	for _, e := range index {
		p.printf("[")
		p.printExpr(e)
		p.printf("]")
	}
}

func (p *Printer) printArraySuffix(isArray bool, size Expr) {
	if !isArray {
		return
	}
	p.printf("[")
	if size != nil {
		p.printExpr(size)
	}
	p.printf("]")
}

func (p *Printer) printBlock(b *Block) {
	if b == nil {
		p.printf("{}")
		return
	}
	p.printf("{\n")
	p.indent++
	for _, s := range b.Stmts {
		p.writeIndent()
		p.printStmt(s)
		p.printf("\n")
	}
	p.indent--
	p.writeIndent()
	p.printf("}")
}

func (p *Printer) printCase(c *CaseClause) {
	p.writeIndent()
	if c.Value == nil {
		p.printf("default:\n")
	} else {
		p.printf("case ")
		p.printExpr(c.Value)
		p.printf(":\n")
	}
	p.indent++
	for _, s := range c.Body {
		p.writeIndent()
		p.printStmt(s)
		p.printf("\n")
	}
	p.indent--
}

// -----------------------------------------------------------------------------
// Tree dump
// -----------------------------------------------------------------------------

func (p *Printer) dump(label string, node Node) {
	if node == nil {
		return
	}
	p.writeIndent()
	if label != "" {
		p.printf("%s: ", label)
	}
	p.printf("%s", Describe(node))
	if pos := node.Pos(); pos.IsValid() {
		p.printf(" @%s", pos)
	}
	p.printf("\n")

	p.indent++
	for _, c := range children(node) {
		p.dump(c.label, c.node)
	}
	p.indent--
}

// Describe returns a one-line summary of node: its kind plus the
// attributes that are not child nodes.
func Describe(node Node) string {
	name := NodeType(node)
	switch n := node.(type) {
	case *Constant:
		return fmt.Sprintf("%s %s (%s)", name, n.Value, n.Type)
	case *Literal:
		return fmt.Sprintf("%s %s (%s)", name, n.Value, n.Type)
	case *Variable:
		return withType(fmt.Sprintf("%s %s", name, n.Name), n.Type)
	case *BinaryExpr:
		return withType(fmt.Sprintf("%s %q", name, n.Op), n.Type)
	case *Condition:
		return fmt.Sprintf("%s %q", name, n.Op)
	case *UnaryExpr:
		fix := "prefix"
		if n.Postfix {
			fix = "postfix"
		}
		return fmt.Sprintf("%s %s %q", name, fix, n.Op)
	case *FunctionCall:
		return withType(fmt.Sprintf("%s %s", name, n.Name()), n.Type)
	case *Declaration:
		return fmt.Sprintf("%s %s %s", name, n.Type, n.Name)
	case *Assignment:
		if n.Type != "" {
			return fmt.Sprintf("%s %s %s %s", name, n.Type, n.Name, n.Op)
		}
		return fmt.Sprintf("%s %s %s", name, n.Name, n.Op)
	case *FunctionDecl:
		kind := "definition"
		if n.IsPrototype() {
			kind = "prototype"
		}
		return fmt.Sprintf("%s %s %s (%s)", name, n.ReturnType, n.Name, kind)
	case *StructDecl:
		return fmt.Sprintf("%s %s %s", name, structKeyword(n), n.Name)
	case *SelectorExpr:
		return withType(fmt.Sprintf("%s .%s", name, n.Field), n.Type)
	case *EnumDecl:
		names := make([]string, len(n.Enumerators))
		for i, e := range n.Enumerators {
			names[i] = e.Name
		}
		return fmt.Sprintf("%s %s {%s}", name, n.Name, strings.Join(names, ", "))
	case *Param:
		if n.IsArray {
			return fmt.Sprintf("%s %s %s[]", name, n.Type, n.Name)
		}
		return fmt.Sprintf("%s %s %s", name, n.Type, n.Name)
	case *Enumerator:
		return fmt.Sprintf("%s %s", name, n.Name)
	case *CaseClause:
		if n.Value == nil {
			return name + " default"
		}
		return name
	case *ClassDecl:
		return fmt.Sprintf("%s %s", name, n.Name)
	case *ImportDecl:
		return fmt.Sprintf("%s %s", name, n.Path)
	case *PreprocessorDirective:
		if n.File != "" {
			return fmt.Sprintf("%s #%s %s (system=%v)", name, n.Name, n.File, n.System)
		}
		return strings.TrimSpace(fmt.Sprintf("%s #%s %s", name, n.Name, n.Arg))
	default:
		return name
	}
}

func structKeyword(n *StructDecl) string {
	if n.Keyword == "" {
		return "struct"
	}
	return n.Keyword
}

func withType(s, typ string) string {
	if typ == "" {
		return s
	}
	return s + " (" + typ + ")"
}
