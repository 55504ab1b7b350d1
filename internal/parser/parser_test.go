package parser_test

import (
	"strings"
	"testing"

	"github.com/kolkov/toyc/internal/ast"
	"github.com/kolkov/toyc/internal/diag"
	"github.com/kolkov/toyc/internal/lexer"
	"github.com/kolkov/toyc/internal/parser"
	"github.com/kolkov/toyc/internal/token"
)

func parseC(src string) *parser.Result {
	return parser.ParseSource(src, parser.Options{Dialect: token.C})
}

func parseJava(src string) *parser.Result {
	return parser.ParseSource(src, parser.Options{Dialect: token.Java})
}

func messages(ds []diag.Diagnostic) string {
	var sb strings.Builder
	for _, d := range ds {
		sb.WriteString(d.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// expectClean fails the test if res carries any diagnostic.
func expectClean(t *testing.T, res *parser.Result) {
	t.Helper()
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics:\n%s", messages(res.Diagnostics))
	}
}

// expectOne fails unless res has exactly one diagnostic of kind whose
// message contains want.
func expectOne(t *testing.T, res *parser.Result, kind diag.Kind, want string) {
	t.Helper()
	if len(res.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1:\n%s", len(res.Diagnostics), messages(res.Diagnostics))
	}
	d := res.Diagnostics[0]
	if d.Kind != kind || !strings.Contains(d.Message, want) {
		t.Errorf("diagnostic = %v, want %s error containing %q", d, kind, want)
	}
}

func TestParseEmpty(t *testing.T) {
	res := parseC("")
	expectClean(t, res)
	if len(res.Nodes) != 0 {
		t.Errorf("Nodes = %d, want 0", len(res.Nodes))
	}
}

func TestParseExprPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"2 + 3 * 4", "2 + (3 * 4)"},
		{"2 * 3 + 4", "(2 * 3) + 4"},
		{"1 - 2 - 3", "(1 - 2) - 3"},
		{"1 << 2 + 3", "1 << (2 + 3)"},
		{"1 < 2 == 3 > 4", "(1 < 2) == (3 > 4)"},
		{"1 || 2 && 3", "1 || (2 && 3)"},
		{"1 & 2 | 3 ^ 4", "(1 & 2) | (3 ^ 4)"},
		{"-1 + 2", "-1 + 2"},
		{"(1 + 2) * 3", "(1 + 2) * 3"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			x, ds := parser.ParseExpr(tt.src, token.C)
			if len(ds) != 0 {
				t.Fatalf("diagnostics:\n%s", messages(ds))
			}
			if got := ast.String(x); got != tt.want {
				t.Errorf("ParseExpr(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseExprRoot(t *testing.T) {
	x, _ := parser.ParseExpr("2 + 3 * 4", token.C)
	root, ok := x.(*ast.BinaryExpr)
	if !ok || root.Op != "+" {
		t.Fatalf("root = %s, want BinaryExpression \"+\"", ast.Describe(x))
	}
	if right, ok := root.Right.(*ast.BinaryExpr); !ok || right.Op != "*" {
		t.Errorf("right = %s, want BinaryExpression \"*\"", ast.Describe(root.Right))
	}
	if root.DataType() != "int" {
		t.Errorf("type = %q, want int", root.DataType())
	}

	x, _ = parser.ParseExpr("a = b = 1", token.C)
	asg, ok := x.(*ast.BinaryExpr)
	if !ok || asg.Op != "=" {
		t.Fatalf("root = %s, want assignment", ast.Describe(x))
	}
	if inner, ok := asg.Right.(*ast.BinaryExpr); !ok || inner.Op != "=" {
		t.Errorf("assignment is not right associative: %s", ast.String(x))
	}
}

func TestMalformedDeclarationRecovers(t *testing.T) {
	res := parseC("int x = ; int y = 5;")
	if n := len(diag.Filter(res.Diagnostics, diag.Syntax)); n < 1 {
		t.Fatalf("syntax diagnostics = %d, want at least 1", n)
	}
	if len(res.Nodes) == 0 {
		t.Fatal("no nodes")
	}
	last, ok := res.Nodes[len(res.Nodes)-1].(*ast.Assignment)
	if !ok || last.Name != "y" || ast.String(last.Value) != "5" {
		t.Errorf("last node = %s, want Assignment y = 5", ast.Describe(res.Nodes[len(res.Nodes)-1]))
	}
}

func TestDeclarationsUseEarlierVariables(t *testing.T) {
	res := parseC("int x = 5; int y = x + 1;")
	expectClean(t, res)
	if len(res.Nodes) != 2 {
		t.Fatalf("Nodes = %d, want 2", len(res.Nodes))
	}
	y, ok := res.Nodes[1].(*ast.Assignment)
	if !ok {
		t.Fatalf("second node = %T", res.Nodes[1])
	}
	sum, ok := y.Value.(*ast.BinaryExpr)
	if !ok || sum.Op != "+" {
		t.Fatalf("value = %s", ast.Describe(y.Value))
	}
	if v, ok := sum.Left.(*ast.Variable); !ok || v.Name != "x" || v.Type != "int" {
		t.Errorf("left = %s, want Variable x (int)", ast.Describe(sum.Left))
	}
	if c, ok := sum.Right.(*ast.Constant); !ok || c.Value != "1" {
		t.Errorf("right = %s, want Constant 1", ast.Describe(sum.Right))
	}
}

func TestUndeclaredVariable(t *testing.T) {
	res := parseC("int y = x + 1;")
	expectOne(t, res, diag.Semantic, `"x"`)
	if len(res.Nodes) != 1 {
		t.Errorf("Nodes = %d, want 1", len(res.Nodes))
	}
}

func TestUnclosedBlock(t *testing.T) {
	toks := lexer.New([]byte("if (a == 1) { int x = 1;"), token.C).All()
	p := parser.New(toks, parser.Options{})
	res := p.Parse()

	found := false
	for _, d := range diag.Filter(res.Diagnostics, diag.Syntax) {
		if strings.Contains(d.Message, "unclosed block") {
			found = true
		}
	}
	if !found {
		t.Errorf("no unclosed block diagnostic:\n%s", messages(res.Diagnostics))
	}
	if depth := p.Symbols().Depth(); depth != 1 {
		t.Errorf("scope depth = %d, want 1", depth)
	}
}

func TestScopes(t *testing.T) {
	t.Run("shadowing", func(t *testing.T) {
		expectClean(t, parseC("int x = 1; { int x = 2; x = 3; } x = 4;"))
	})
	t.Run("redeclaration", func(t *testing.T) {
		expectOne(t, parseC("int x = 1; int x = 2;"), diag.Semantic, "already declared")
	})
	t.Run("block local", func(t *testing.T) {
		expectOne(t, parseC("{ int z = 1; } int w = z;"), diag.Semantic, `"z" is not declared`)
	})
	t.Run("for scope", func(t *testing.T) {
		res := parseC("int s = 0; for (int i = 0; i < 3; i++) { s += i; } int j = i;")
		expectOne(t, res, diag.Semantic, `"i" is not declared`)
	})
	t.Run("parameters", func(t *testing.T) {
		expectOne(t, parseC("int f(int a, int a) { return a; }"), diag.Semantic, "already declared")
	})
}

func TestInitialization(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string // "" means no diagnostics
	}{
		{"read before assign", "int x; int y = x;", "before being assigned"},
		{"assigned later", "int x; x = 1; int y = x;", ""},
		{"self reference", "int x = x;", "before being assigned"},
		{"compound on unassigned", "int x; x += 1;", "before being assigned"},
		{"address taken", `int n; scanf("%d", &n); int m = n;`, ""},
		{"array element", "int a[3]; a[0] = 1; int b = a[0];", ""},
		{"enumerator", "enum { A, B }; int c = B;", ""},
		{"macro", "#define N 4\nint n = N;", ""},
		{"nested assignment", "int a; int b; a = b = 2; int c = a + b;", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseC(tt.src)
			if tt.want == "" {
				expectClean(t, res)
				return
			}
			expectOne(t, res, diag.Semantic, tt.want)
		})
	}
}

func TestTypeChecks(t *testing.T) {
	tests := []struct {
		name    string
		dialect token.Dialect
		src     string
		want    string
	}{
		{"string to int", token.Java, `int x = "hello";`, `cannot assign String to int "x"`},
		{"double to int", token.Java, "int x = 1.5;", "cannot assign double to int"},
		{"int to double", token.Java, "double d = 1;", ""},
		{"char array from string", token.C, `char s[] = "hi";`, ""},
		{"init list element", token.C, `int a[2] = {1, "x"};`, "cannot assign String to int"},
		{"void variable", token.C, "void v;", `"v" declared void`},
		{"string minus", token.Java, `String s = "a" - 1;`, `operator "-"`},
		{"string concat", token.Java, `String s = "n = " + 1;`, ""},
		{"compound string", token.Java, `String s = "a"; s += "b";`, ""},
		{"negate string", token.Java, `String s = "a"; String t = -s;`, `operator "-"`},
		{"cast", token.C, "int n = (int) 2.5;", ""},
		{"whole array assignment", token.C, "int a[2]; int b[2]; a = b;", "without an index"},
		{"nested subscript", token.C, `int a[2][3]; a[0][1] = "s";`, `cannot assign String to int "a"`},
		{"char literal", token.C, "char c = 'a';", ""},
		{"escaped char literal", token.C, `char c = '\n'; char q = '\'';`, ""},
		{"two char literal", token.C, "char c = 'ab';", "invalid character literal 'ab'"},
		{"empty char literal", token.Java, "char d = '';", "invalid character literal ''"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parser.ParseSource(tt.src, parser.Options{Dialect: tt.dialect})
			if tt.want == "" {
				expectClean(t, res)
				return
			}
			expectOne(t, res, diag.Semantic, tt.want)
		})
	}
}

func TestConditions(t *testing.T) {
	tests := []struct {
		name    string
		dialect token.Dialect
		src     string
		want    string
	}{
		{"assignment", token.C, "int a = 1; if (a = 2) { }", "invalid operator '='"},
		{"two constants", token.C, "if (1 == 1) { }", "two constants"},
		{"string equality", token.Java, `String s = "a"; if (s == "b") { }`, `strings compared with "=="`},
		{"compare mismatch", token.Java, `String s = "a"; int n = 1; if (s == n) { }`, "cannot compare String with int"},
		{"java non boolean", token.Java, "int n = 1; if (n) { }", "not boolean"},
		{"c integer test", token.C, "int n = 1; if (n) { }", ""},
		{"logical", token.C, "int a = 1; int b = 2; while (a < b && !(a == 0)) { a++; }", ""},
		{"boolean variable", token.Java, "boolean done = false; while (!done) { done = true; }", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parser.ParseSource(tt.src, parser.Options{Dialect: tt.dialect})
			if tt.want == "" {
				expectClean(t, res)
				return
			}
			expectOne(t, res, diag.Semantic, tt.want)
		})
	}
}

func TestConditionNodes(t *testing.T) {
	res := parseC("int a = 1; if (a == 1 || a > 3) { a = 2; } else if (a == 2) { a = 3; } else a = 4;")
	expectClean(t, res)
	stmt, ok := res.Nodes[1].(*ast.IfStmt)
	if !ok {
		t.Fatalf("node = %T, want *ast.IfStmt", res.Nodes[1])
	}
	or, ok := stmt.Cond.(*ast.BinaryExpr)
	if !ok || or.Op != "||" {
		t.Fatalf("cond = %s", ast.Describe(stmt.Cond))
	}
	if _, ok := or.Left.(*ast.Condition); !ok {
		t.Errorf("left of || = %T, want *ast.Condition", or.Left)
	}
	if len(stmt.ElseIfs) != 1 || stmt.Else == nil || len(stmt.Else.Stmts) != 1 {
		t.Errorf("else-if arms = %d, else = %v", len(stmt.ElseIfs), stmt.Else)
	}
}

func TestSwitch(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		allow bool
		want  string
	}{
		{"clean", "int x = 1; switch (x) { case 1: x = 2; break; case 2: case 3: break; default: break; }", false, ""},
		{"missing break", "int x = 1; switch (x) { case 1: x = 2; case 2: break; }", false, "expected 'break;' at the end of case"},
		{"fallthrough allowed", "int x = 1; switch (x) { case 1: x = 2; case 2: break; }", true, ""},
		{"default without break", "int x = 1; switch (x) { default: x = 3; }", false, "end of default"},
		{"return ends case", "int f(int x) { switch (x) { case 1: return 1; default: return 0; } }", false, ""},
		{"break in nested block", "int x = 1; switch (x) { case 1: { x = 2; break; } }", false, ""},
		{"duplicate case", "int x = 1; switch (x) { case 1: break; case 1: break; }", false, "duplicate case value 1"},
		{"duplicate default", "int x = 1; switch (x) { default: break; default: break; }", false, "multiple default"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parser.ParseSource(tt.src, parser.Options{Dialect: token.C, AllowFallthrough: tt.allow})
			if tt.want == "" {
				expectClean(t, res)
				return
			}
			expectOne(t, res, diag.Semantic, tt.want)
		})
	}
}

func TestStatementContext(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"break outside", "break;", "break statement must be inside"},
		{"continue outside", "continue;", "continue statement must be inside"},
		{"continue in switch", "int x = 1; switch (x) { case 1: continue; }", "continue statement must be inside"},
		{"return outside", "return 1;", "return statement must be inside"},
		{"missing value", "int f() { return; }", `"f" must return a int value`},
		{"void with value", "void g() { return 1; }", `cannot return int from function "g" returning void`},
		{"wrong type", `int h() { return "s"; }`, "cannot return String"},
		{"loop break", "while (1) { break; }", ""},
		{"do continue", "int i = 0; do { i++; continue; } while (i < 3);", ""},
		{"function resets loop", "while (1) { break; } int k() { return 0; }", ""},
		{"falls off end", "int m(int a) { if (a > 0) { return 1; } }", `control reaches the end of non-void function "m"`},
		{"main may fall off", "int main() { int a = 1; }", ""},
		{"infinite loop ends function", "int w() { while (1) { } }", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseC(tt.src)
			if tt.want == "" {
				expectClean(t, res)
				return
			}
			expectOne(t, res, diag.Semantic, tt.want)
		})
	}
}

func TestFunctions(t *testing.T) {
	t.Run("definition and call", func(t *testing.T) {
		res := parseC("int add(int a, int b) { return a + b; } int s = add(1, 2);")
		expectClean(t, res)
		fn, ok := res.Nodes[0].(*ast.FunctionDecl)
		if !ok || fn.Name != "add" || len(fn.Params) != 2 || fn.IsPrototype() {
			t.Fatalf("node 0 = %s", ast.Describe(res.Nodes[0]))
		}
		call := res.Nodes[1].(*ast.Assignment).Value.(*ast.FunctionCall)
		if call.DataType() != "int" {
			t.Errorf("call type = %q, want int", call.DataType())
		}
	})
	t.Run("recursion", func(t *testing.T) {
		expectClean(t, parseC("int fact(int n) { if (n <= 1) { return 1; } return n * fact(n - 1); }"))
	})
	t.Run("prototype then definition", func(t *testing.T) {
		expectClean(t, parseC("int sq(int n); int sq(int n) { return n * n; }"))
	})
	t.Run("arity", func(t *testing.T) {
		res := parseC("int add(int a, int b) { return a + b; } int s = add(1);")
		expectOne(t, res, diag.Semantic, `"add" expects 2 arguments, got 1`)
	})
	t.Run("redefinition", func(t *testing.T) {
		res := parseC("void f() { } void f() { }")
		expectOne(t, res, diag.Semantic, "already defined")
	})
	t.Run("conflict", func(t *testing.T) {
		res := parseC("int f(int a); double f(int a) { return 1.0; }")
		expectOne(t, res, diag.Semantic, "conflicting declaration")
	})
	t.Run("builtin arity", func(t *testing.T) {
		expectOne(t, parseC("int c = getchar(1);"), diag.Semantic, `"getchar" expects 0 arguments, got 1`)
	})
	t.Run("unknown function", func(t *testing.T) {
		expectClean(t, parseC("int r = compute(1, 2, 3);"))
	})
	t.Run("void parameter list", func(t *testing.T) {
		res := parseC("int main(void) { return 0; }")
		expectClean(t, res)
		if fn := res.Nodes[0].(*ast.FunctionDecl); len(fn.Params) != 0 {
			t.Errorf("params = %d, want 0", len(fn.Params))
		}
	})
}

func TestCProgram(t *testing.T) {
	src := `#include <stdio.h>
#define SIZE 10

struct point { int x; int y; };

int main() {
    int n;
    scanf("%d", &n);
    int arr[SIZE];
    struct point p;
    p.x = n;
    for (int i = 0; i < n; i++) {
        arr[i] = i * 2;
    }
    if (n > 0) printf("%d\n", arr[0]);
    return 0;
}
`
	res := parseC(src)
	expectClean(t, res)
	if len(res.Nodes) != 4 {
		t.Fatalf("Nodes = %d, want 4", len(res.Nodes))
	}
	inc := res.Nodes[0].(*ast.PreprocessorDirective)
	if inc.Name != "include" || inc.File != "stdio.h" || !inc.System {
		t.Errorf("include = %+v", inc)
	}
	if s := res.Nodes[2].(*ast.StructDecl); s.Name != "point" || len(s.Members) != 2 {
		t.Errorf("struct = %s", ast.Describe(s))
	}
}

func TestJavaProgram(t *testing.T) {
	src := `import java.util.Scanner;

public class Main {
    static int count;

    public static void main(String[] args) {
        int n = args.length;
        count = n;
        System.out.println("n = " + n);
    }
}
`
	res := parseJava(src)
	expectClean(t, res)
	if len(res.Nodes) != 2 {
		t.Fatalf("Nodes = %d, want 2", len(res.Nodes))
	}
	if imp := res.Nodes[0].(*ast.ImportDecl); imp.Path != "java.util.Scanner" {
		t.Errorf("import = %q", imp.Path)
	}
	class := res.Nodes[1].(*ast.ClassDecl)
	if class.Name != "Main" || len(class.Members) != 2 {
		t.Errorf("class = %s with %d members", ast.Describe(class), len(class.Members))
	}
}

func TestPreprocessor(t *testing.T) {
	tests := []struct {
		name    string
		dialect token.Dialect
		src     string
		want    string
	}{
		{"local include", token.C, `#include "util.h"`, ""},
		{"malformed include", token.C, "#include stdio.h", "malformed #include"},
		{"unknown directive", token.C, "#frobnicate", "unknown preprocessor directive"},
		{"bad macro name", token.C, "#define 1X 2", "not a valid macro name"},
		{"function macro", token.C, "#define MAX(a, b) ((a) > (b) ? (a) : (b))", ""},
		{"java", token.Java, "#include <stdio.h>", "not supported in java"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parser.ParseSource(tt.src, parser.Options{Dialect: tt.dialect})
			if tt.want == "" {
				expectClean(t, res)
				return
			}
			expectOne(t, res, diag.Syntax, tt.want)
		})
	}
}

func TestStructsAndEnums(t *testing.T) {
	res := parseC("enum color { RED, GREEN = 4, }; enum color c = GREEN; union u { int i; float f; } v;")
	expectClean(t, res)
	e := res.Nodes[0].(*ast.EnumDecl)
	if len(e.Enumerators) != 2 || e.Enumerators[1].Value == nil {
		t.Errorf("enum = %s", ast.Describe(e))
	}
	if u := res.Nodes[2].(*ast.StructDecl); u.Keyword != "union" {
		t.Errorf("keyword = %q, want union", u.Keyword)
	}

	dup := parseC("struct s { int a; int a; };")
	expectOne(t, dup, diag.Semantic, `duplicate member "a"`)
}

func TestDeclGroup(t *testing.T) {
	res := parseC("int a = 1, b, c[2] = {1, 2};")
	expectClean(t, res)
	g, ok := res.Nodes[0].(*ast.DeclGroup)
	if !ok || len(g.Decls) != 3 {
		t.Fatalf("node = %s", ast.Describe(res.Nodes[0]))
	}
	if _, ok := g.Decls[1].(*ast.Declaration); !ok {
		t.Errorf("b = %T, want *ast.Declaration", g.Decls[1])
	}
	if c := g.Decls[2].(*ast.Assignment); !c.IsArray {
		t.Error("c is not an array")
	}
}

func TestUnrecognizedTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed number", "int y = 12abc;"},
		{"bare hex prefix", "int q = 0x;"},
		{"stray symbol", "int x = 1; @ ;"},
		{"dollar name", "int $v = 3;"},
		{"assignment target", "int n = 0; @n = 2;"},
		{"operand", "int n = 0; n = 1 + @;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectOne(t, parseC(tt.src), diag.Syntax, "unrecognized token")
		})
	}

	t.Run("java allows dollar", func(t *testing.T) {
		expectClean(t, parseJava("int $v = 3; int w = $v + 1;"))
	})
}

func TestNestedSubscriptAssignment(t *testing.T) {
	res := parseC("int a[2][3]; a[0][1] = 2;")
	expectClean(t, res)
	a, ok := res.Nodes[1].(*ast.Assignment)
	if !ok {
		t.Fatalf("node 1 = %s, want Assignment", ast.Describe(res.Nodes[1]))
	}
	if len(a.Index) != 2 {
		t.Errorf("subscripts = %d, want 2", len(a.Index))
	}
	if got := ast.String(a); got != "a[0][1] = 2;" {
		t.Errorf("printed = %q", got)
	}
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"stray close brace", "} int y = 1;"},
		{"missing semicolon", "int x = 1 while (x) { x = 0; } int y = 1;"},
		{"bad statement", "int = 5; int y = 1;"},
		{"unclosed call", "int y = 1; f(1, 2"},
		{"unclosed paren in if", "int y = 1; if (y == 1 { y = 2; }"},
		{"unexpected keyword", "typedef int myint; int y = 1;"},
		{"outside case", "int y = 1; switch (y) { y = 2; case 1: break; }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexer.New([]byte(tt.src), token.C).All()
			p := parser.New(toks, parser.Options{})
			res := p.Parse()
			if len(diag.Filter(res.Diagnostics, diag.Syntax)) == 0 {
				t.Errorf("no syntax diagnostics for %q", tt.src)
			}
			if depth := p.Symbols().Depth(); depth != 1 {
				t.Errorf("scope depth = %d, want 1", depth)
			}
			if _, ok := p.Symbols().Lookup("y"); !ok {
				t.Errorf("y was not declared after recovery:\n%s", messages(res.Diagnostics))
			}
		})
	}
}

func TestLexerDiagnosticsFirst(t *testing.T) {
	res := parseC(`char *s = "abc`)
	if len(res.Diagnostics) == 0 {
		t.Fatal("no diagnostics")
	}
	if !strings.Contains(res.Diagnostics[0].Message, "unterminated") {
		t.Errorf("first diagnostic = %v, want the lexer's", res.Diagnostics[0])
	}
}

func TestDiagnosticsMonotonic(t *testing.T) {
	src := "int y = x; int z = q;"
	toks := lexer.New([]byte(src), token.C).All()
	full := parser.Parse(toks, parser.Options{}).Diagnostics
	prefix := parser.Parse(toks[:5], parser.Options{}).Diagnostics
	if len(prefix) > len(full) {
		t.Fatalf("prefix has %d diagnostics, full input %d", len(prefix), len(full))
	}
	for i := range prefix {
		if prefix[i] != full[i] {
			t.Errorf("diagnostic %d: prefix %v, full %v", i, prefix[i], full[i])
		}
	}
}
