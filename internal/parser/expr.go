package parser

import (
	"strings"

	"github.com/kolkov/toyc/internal/ast"
	"github.com/kolkov/toyc/internal/semantic"
	"github.com/kolkov/toyc/internal/token"
)

// Binary operator precedence, lowest first.
const (
	precComma          = iota // ,
	precAssign                // = += -= ... (right associative)
	precOr                    // ||
	precAnd                   // &&
	precBitOr                 // |
	precBitXor                // ^
	precBitAnd                // &
	precEquality              // == !=
	precRelational            // < > <= >=
	precShift                 // << >>
	precAdditive              // + -
	precMultiplicative        // * / %
)

var binaryPrec = map[string]int{
	"||": precOr,
	"&&": precAnd,
	"|":  precBitOr,
	"^":  precBitXor,
	"&":  precBitAnd,
	"==": precEquality,
	"!=": precEquality,
	"<":  precRelational,
	">":  precRelational,
	"<=": precRelational,
	">=": precRelational,
	"<<": precShift,
	">>": precShift,
	"+":  precAdditive,
	"-":  precAdditive,
	"*":  precMultiplicative,
	"/":  precMultiplicative,
	"%":  precMultiplicative,
}

// unaryOps are the prefix operators.
var unaryOps = map[string]bool{
	"-": true, "+": true, "!": true, "~": true,
	"++": true, "--": true, "&": true, "*": true,
}

// binaryPrecedence returns the precedence of t as an infix operator.
func binaryPrecedence(t token.Token) (int, bool) {
	switch t.Kind {
	case token.PUNCTUATOR:
		if t.Text == "," {
			return precComma, true
		}
	case token.OPERATOR:
		if token.IsAssignOp(t.Text) {
			return precAssign, true
		}
		prec, ok := binaryPrec[t.Text]
		return prec, ok
	}
	return 0, false
}

// parseExpression parses operators binding at least as tightly as
// minPrec by precedence climbing.
//
// Each operator consumed recurses with a higher floor, so left operands
// group first: 2 + 3 * 4 becomes 2 + (3 * 4) and 1 - 2 - 3 becomes
// (1 - 2) - 3. Assignment keeps the same floor to associate right.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	left := p.parseUnary()
	if _, bad := left.(*ast.BadExpr); bad {
		return left
	}
	for {
		op := p.cur.cur()
		prec, ok := binaryPrecedence(op)
		if !ok || prec < minPrec {
			return left
		}
		p.cur.next()
		next := prec + 1
		if prec == precAssign {
			next = prec
		}
		right := p.parseExpression(next)
		left = p.binary(left, op, right)
	}
}

// binary builds "left op right", inferring its type and reporting
// operands the operator cannot take.
func (p *Parser) binary(left ast.Expr, op token.Token, right ast.Expr) ast.Expr {
	lt, rt := left.DataType(), right.DataType()
	base := ast.MakeBaseExpr(left.Pos(), right.End(), "")

	switch {
	case token.IsAssignOp(op.Text):
		if !ast.IsLValue(left) {
			p.diags.Syntaxf(op.Pos, errInvalidTarget)
		} else {
			p.assignTo(left, op, right)
		}
		base.Type = lt
	case token.IsComparisonOp(op.Text):
		if !semantic.Comparable(lt, rt) {
			p.semanticf(op.Pos, semantic.ErrCompareMismatch, lt, rt)
		} else if _, ok := semantic.BinaryResult(op.Text, lt, rt); !ok {
			p.semanticf(op.Pos, semantic.ErrBadOperand, op.Text, lt, rt)
		}
		base.Type = semantic.TypeBoolean
	default:
		typ, ok := semantic.BinaryResult(op.Text, lt, rt)
		if !ok {
			p.semanticf(op.Pos, semantic.ErrBadOperand, op.Text, typeName(lt), typeName(rt))
		}
		base.Type = typ
	}
	return &ast.BinaryExpr{BaseExpr: base, Left: left, Op: op.Text, Right: right}
}

// assignTo applies an assignment inside an expression such as
// "a = b = 0" to the variable at the root of left.
func (p *Parser) assignTo(left ast.Expr, op token.Token, right ast.Expr) {
	v := rootVariable(left)
	if v == nil {
		return
	}
	if _, ok := p.syms.Lookup(v.Name); !ok {
		return // reported when the variable was parsed
	}
	p.syms.Assign(v.Name)
	if op.Text == "=" {
		p.checkAssignable(op.Pos, v.Name, left.DataType(), false, right)
		return
	}
	binop := strings.TrimSuffix(op.Text, "=")
	if _, ok := semantic.BinaryResult(binop, left.DataType(), right.DataType()); !ok {
		p.semanticf(op.Pos, semantic.ErrBadOperand, binop, typeName(left.DataType()), typeName(right.DataType()))
	}
}

// rootVariable returns the variable an lvalue ultimately names.
func rootVariable(e ast.Expr) *ast.Variable {
	switch e := e.(type) {
	case *ast.Variable:
		return e
	case *ast.IndexExpr:
		return rootVariable(e.Array)
	case *ast.SelectorExpr:
		return rootVariable(e.X)
	case *ast.ParenExpr:
		return rootVariable(e.X)
	case *ast.UnaryExpr:
		if e.Op == "&" {
			return rootVariable(e.Operand)
		}
	}
	return nil
}

// parseUnary parses prefix operators. "&x" takes the address of x, which
// may be written through it (as scanf does), so x need not be assigned yet.
func (p *Parser) parseUnary() ast.Expr {
	op := p.cur.cur()
	if op.Kind != token.OPERATOR || !unaryOps[op.Text] {
		return p.parsePostfix(p.parsePrimary())
	}
	p.cur.next()

	if op.Text == "&" && p.cur.cur().Kind == token.IDENTIFIER && !isFunctionCall(p.cur.window(maxLookahead)) {
		operand := p.parsePostfix(p.variable(p.cur.next(), true))
		if v := rootVariable(operand); v != nil {
			p.syms.Assign(v.Name)
		}
		return &ast.UnaryExpr{
			BaseExpr: ast.MakeBaseExpr(op.Pos, operand.End(), ""),
			Op:       op.Text,
			Operand:  operand,
		}
	}
	return p.unary(op, p.parseUnary(), false)
}

// unary builds a prefix or postfix operation.
func (p *Parser) unary(op token.Token, operand ast.Expr, postfix bool) ast.Expr {
	typ := operand.DataType()
	class := semantic.ClassOf(typ)

	switch op.Text {
	case "++", "--":
		if !ast.IsLValue(operand) {
			p.diags.Syntaxf(op.Pos, errInvalidTarget)
		} else if class == semantic.ClassString || class == semantic.ClassBoolean {
			p.semanticf(op.Pos, semantic.ErrBadUnary, op.Text, typ)
		}
	case "!":
		typ = semantic.TypeBoolean
	case "-", "+", "~":
		if class == semantic.ClassString || class == semantic.ClassBoolean {
			p.semanticf(op.Pos, semantic.ErrBadUnary, op.Text, typ)
		}
	default: // * and &
		typ = ""
	}

	start, end := op.Pos, operand.End()
	if postfix {
		start, end = operand.Pos(), op.Pos
	}
	return &ast.UnaryExpr{
		BaseExpr: ast.MakeBaseExpr(start, end, typ),
		Op:       op.Text,
		Operand:  operand,
		Postfix:  postfix,
	}
}

// parsePostfix applies indexing, member access and postfix ++/--.
func (p *Parser) parsePostfix(x ast.Expr) ast.Expr {
	for {
		tok := p.cur.cur()
		switch {
		case tok.IsPunct("["):
			p.cur.next()
			index := p.parseExpression(precComma)
			if !p.cur.cur().IsPunct("]") {
				p.errorf(errUnclosedIndex)
				return x
			}
			p.cur.next()
			x = &ast.IndexExpr{
				BaseExpr: ast.MakeBaseExpr(x.Pos(), p.cur.last().Pos, elemType(x.DataType())),
				Array:    x,
				Index:    index,
			}
		case tok.IsPunct(".") && isMember(p.cur.peek(1)):
			p.cur.next()
			field := p.cur.next()
			typ := ""
			if field.Text == "length" {
				typ = semantic.TypeInt
			}
			x = &ast.SelectorExpr{
				BaseExpr: ast.MakeBaseExpr(x.Pos(), field.Pos, typ),
				X:        x,
				Field:    field.Text,
			}
		case tok.IsOp("++"), tok.IsOp("--"):
			p.cur.next()
			x = p.unary(tok, x, true)
		default:
			return x
		}
	}
}

// elemType returns the element type of an array type such as "int[]".
func elemType(typ string) string {
	if elem, ok := strings.CutSuffix(typ, "[]"); ok {
		return elem
	}
	return ""
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur.cur()
	switch {
	case tok.Kind == token.CONSTANT:
		p.cur.next()
		return &ast.Constant{
			BaseExpr: ast.MakeBaseExpr(tok.Pos, tok.Pos, semantic.ConstantType(tok.Text)),
			Value:    tok.Text,
		}
	case tok.Kind == token.LITERAL:
		p.cur.next()
		if n := semantic.CharLength(tok.Text); strings.HasPrefix(tok.Text, "'") && n >= 0 && n != 1 {
			p.semanticf(tok.Pos, semantic.ErrCharLiteral, tok.Text)
		}
		return &ast.Literal{
			BaseExpr: ast.MakeBaseExpr(tok.Pos, tok.Pos, semantic.LiteralType(tok.Text)),
			Value:    tok.Text,
		}
	case tok.Kind == token.IDENTIFIER:
		if !p.checkIdent(tok) {
			p.cur.next()
			return &ast.BadExpr{BaseExpr: ast.MakeBaseExpr(tok.Pos, tok.Pos, "")}
		}
		w := p.cur.window(maxLookahead)
		if isFunctionCall(w) {
			return p.parseCall()
		}
		write := assignOp(w) == "="
		return p.variable(p.cur.next(), write)
	case tok.IsPunct("("):
		return p.parseParenOrCast()
	case tok.IsPunct("{"):
		return p.parseInitList()
	}
	p.errorf("%s", expected("expression", tok))
	return &ast.BadExpr{BaseExpr: ast.MakeBaseExpr(tok.Pos, tok.Pos, "")}
}

// variable resolves a name through the scope stack. A read of a declared
// but never assigned variable is reported; a plain write is not.
func (p *Parser) variable(tok token.Token, write bool) ast.Expr {
	v := &ast.Variable{BaseExpr: ast.MakeBaseExpr(tok.Pos, tok.Pos, ""), Name: tok.Text}
	info, ok := p.syms.Lookup(tok.Text)
	if !ok {
		p.semanticf(tok.Pos, semantic.ErrUndeclared, tok.Text)
		return v
	}
	v.Type = info.Type
	if info.IsArray {
		v.Type += "[]"
	}
	if !write && !info.Initialized {
		p.semanticf(tok.Pos, semantic.ErrUninitialized, tok.Text)
	}
	return v
}

// parseParenOrCast parses "(expr)" or a cast "(type) operand".
func (p *Parser) parseParenOrCast() ast.Expr {
	open := p.cur.next()
	if n := typeSpecLen(p.cur.window(maxLookahead), p.opts.Dialect); n > 0 && p.cur.peek(n).IsPunct(")") {
		typ, _ := p.parseTypeSpec()
		p.cur.next() // )
		operand := p.parseUnary()
		return &ast.UnaryExpr{
			BaseExpr: ast.MakeBaseExpr(open.Pos, operand.End(), typ),
			Op:       "(" + typ + ")",
			Operand:  operand,
		}
	}

	x := p.parseExpression(precComma)
	p.expectPunct(")")
	return &ast.ParenExpr{
		BaseExpr: ast.MakeBaseExpr(open.Pos, p.cur.last().Pos, x.DataType()),
		X:        x,
	}
}

// parseInitList parses "{1, 2, 3}", allowing a trailing comma.
func (p *Parser) parseInitList() ast.Expr {
	open := p.cur.next()
	var elems []ast.Expr
	for !p.cur.cur().IsPunct("}") {
		if p.cur.atEOF() {
			p.diags.Syntaxf(open.Pos, errUnclosedBlock)
			break
		}
		if len(elems) > 0 {
			if !p.expectPunct(",") {
				break
			}
			if p.cur.cur().IsPunct("}") {
				break
			}
		}
		e := p.parseInitializer()
		elems = append(elems, e)
		if _, bad := e.(*ast.BadExpr); bad {
			break
		}
	}
	if p.cur.cur().IsPunct("}") {
		p.cur.next()
	}
	return &ast.InitList{
		BaseExpr: ast.MakeBaseExpr(open.Pos, p.cur.last().Pos, ""),
		Elems:    elems,
	}
}

// -----------------------------------------------------------------------------
// Calls
// -----------------------------------------------------------------------------

// parseCall parses "f(args)" or "a.b.f(args)".
func (p *Parser) parseCall() ast.Expr {
	first := p.cur.next()
	path := []string{first.Text}
	for p.cur.cur().IsPunct(".") {
		p.cur.next()
		path = append(path, p.cur.next().Text)
	}
	p.cur.next() // (

	call := &ast.FunctionCall{Path: path}
	for !p.cur.cur().IsPunct(")") {
		if p.cur.atEOF() {
			p.diags.Syntaxf(first.Pos, errUnclosedCall, call.Name())
			break
		}
		if len(call.Args) > 0 && !p.expectPunct(",") {
			break
		}
		arg := p.parseExpression(precAssign)
		call.Args = append(call.Args, arg)
		if _, bad := arg.(*ast.BadExpr); bad {
			break
		}
	}
	if p.cur.cur().IsPunct(")") {
		p.cur.next()
	}

	call.BaseExpr = ast.MakeBaseExpr(first.Pos, p.cur.last().Pos, p.checkCall(first.Pos, call))
	return call
}

// checkCall checks the argument count of calls to known functions and
// returns the call's type. Calls to unknown functions are not reported:
// they may be defined in another translation unit or a library.
func (p *Parser) checkCall(pos token.Position, call *ast.FunctionCall) string {
	name := call.Name()
	if len(call.Path) == 1 {
		if fn, ok := p.syms.LookupFunc(name); ok {
			if len(call.Args) != len(fn.ParamTypes) {
				want := semantic.Arity(len(fn.ParamTypes), len(fn.ParamTypes))
				p.semanticf(pos, semantic.ErrArity, name, want, len(call.Args))
			}
			return fn.ReturnType
		}
	}
	if len(call.Path) == 1 || strings.HasPrefix(name, "System.out.") {
		if b, ok := semantic.LookupBuiltin(p.opts.Dialect, call.Callee()); ok && !b.Accepts(len(call.Args)) {
			p.semanticf(pos, semantic.ErrArity, name, semantic.Arity(b.MinArgs, b.MaxArgs), len(call.Args))
		}
	}
	return ""
}

// -----------------------------------------------------------------------------
// Conditions
// -----------------------------------------------------------------------------

// parseCondition parses the test of an if, loop or for clause.
// Comparisons become Condition nodes and are joined by && and ||.
func (p *Parser) parseCondition() ast.Expr {
	return p.condition(p.parseExpression(precComma))
}

// condition rewrites comparisons in e into Condition nodes and reports
// tests that are almost certainly mistakes.
func (p *Parser) condition(e ast.Expr) ast.Expr {
	switch x := e.(type) {
	case *ast.BinaryExpr:
		switch {
		case x.Op == "&&" || x.Op == "||":
			return &ast.BinaryExpr{
				BaseExpr: x.BaseExpr,
				Left:     p.condition(x.Left),
				Op:       x.Op,
				Right:    p.condition(x.Right),
			}
		case token.IsComparisonOp(x.Op):
			return p.comparison(x)
		case x.Op == "=":
			p.semanticf(x.Pos(), semantic.ErrAssignInCondition)
			return &ast.Condition{BaseExpr: x.BaseExpr, Left: x.Left, Op: x.Op, Right: x.Right}
		}
	case *ast.ParenExpr:
		return &ast.ParenExpr{BaseExpr: x.BaseExpr, X: p.condition(x.X)}
	case *ast.UnaryExpr:
		if x.Op == "!" {
			return &ast.UnaryExpr{BaseExpr: x.BaseExpr, Op: x.Op, Operand: p.condition(x.Operand)}
		}
	case *ast.BadExpr:
		return e
	}

	// A bare operand is a valid test in C; Java requires a boolean.
	if p.opts.Dialect == token.Java {
		typ := e.DataType()
		if c := semantic.ClassOf(typ); c != semantic.ClassUnknown && c != semantic.ClassBoolean {
			p.semanticf(e.Pos(), semantic.ErrNotBoolean, typ)
		}
	}
	return e
}

func (p *Parser) comparison(x *ast.BinaryExpr) ast.Expr {
	switch {
	case ast.IsConstant(x.Left) && ast.IsConstant(x.Right):
		p.semanticf(x.Pos(), semantic.ErrConstantCondition)
	case p.opts.Dialect == token.Java && (x.Op == "==" || x.Op == "!=") &&
		semantic.ClassOf(x.Left.DataType()) == semantic.ClassString &&
		semantic.ClassOf(x.Right.DataType()) == semantic.ClassString:
		p.semanticf(x.Pos(), semantic.ErrStringEquality, x.Op)
	}
	return &ast.Condition{BaseExpr: x.BaseExpr, Left: x.Left, Op: x.Op, Right: x.Right}
}
