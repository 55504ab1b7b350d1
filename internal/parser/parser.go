// Package parser provides a recursive descent parser for toy C-family
// programs. It checks scoping and types while it builds the tree, and it
// never stops at the first problem: syntax errors are recorded and the
// parser resynchronizes at the next statement boundary.
package parser

import (
	"github.com/kolkov/toyc/internal/ast"
	"github.com/kolkov/toyc/internal/diag"
	"github.com/kolkov/toyc/internal/lexer"
	"github.com/kolkov/toyc/internal/semantic"
	"github.com/kolkov/toyc/internal/token"
)

// Options configures a parse.
type Options struct {
	Dialect token.Dialect

	// AllowFallthrough disables the check that every non-empty case body
	// ends in break, return or continue.
	AllowFallthrough bool
}

// Result is everything a parse produces. Diagnostics are in the order
// they were found.
type Result struct {
	Nodes       []ast.Stmt
	Diagnostics []diag.Diagnostic
}

// Parser is a recursive descent parser over a token slice.
type Parser struct {
	cur   cursor
	opts  Options
	syms  *semantic.SymbolTable
	diags diag.List

	// Context for break, continue and return checks.
	fn          *semantic.FuncInfo // enclosing function, nil at top level
	loopDepth   int
	switchDepth int
}

// New creates a Parser over tokens.
func New(tokens []token.Token, opts Options) *Parser {
	return &Parser{
		cur:  cursor{toks: tokens},
		opts: opts,
		syms: semantic.NewSymbolTable(),
	}
}

// Parse parses tokens as a whole program.
func Parse(tokens []token.Token, opts Options) *Result {
	return New(tokens, opts).Parse()
}

// ParseSource lexes and parses src. Lexer diagnostics come first.
func ParseSource(src string, opts Options) *Result {
	lx := lexer.New([]byte(src), opts.Dialect)
	toks := lx.All()
	res := Parse(toks, opts)
	res.Diagnostics = append(lx.Diagnostics(), res.Diagnostics...)
	return res
}

// ParseExpr parses a single expression with an empty symbol table
// (useful for testing).
func ParseExpr(src string, d token.Dialect) (ast.Expr, []diag.Diagnostic) {
	p := New(lexer.New([]byte(src), d).All(), Options{Dialect: d})
	x := p.parseExpression(precComma)
	if !p.cur.atEOF() {
		p.errorf("%s", expected("end of expression", p.cur.cur()))
	}
	return x, p.diags.All()
}

// Symbols returns the parser's symbol table. After Parse only the global
// scope is open.
func (p *Parser) Symbols() *semantic.SymbolTable {
	return p.syms
}

// Parse consumes every token and returns the statements and diagnostics.
// It never fails: malformed input yields diagnostics and a partial tree.
func (p *Parser) Parse() *Result {
	var nodes []ast.Stmt
	for !p.cur.atEOF() {
		if p.cur.cur().IsPunct("}") {
			p.errorf(errUnmatchedBrace)
			p.cur.next()
			continue
		}
		if s := p.statement(); s != nil {
			nodes = append(nodes, s)
		}
	}
	return &Result{Nodes: nodes, Diagnostics: p.diags.All()}
}

// -----------------------------------------------------------------------------
// Statement dispatch
// -----------------------------------------------------------------------------

// statement parses one statement and guarantees that at least one token
// is consumed, so every statement loop terminates.
func (p *Parser) statement() ast.Stmt {
	start := p.cur.mark()
	s := p.parseStatement()
	if p.cur.mark() == start && !p.cur.atEOF() {
		tok := p.cur.next()
		p.diags.Syntaxf(tok.Pos, errUnrecognized, tok)
	}
	return s
}

// parseStatement picks a production from the lookahead window. Order
// matters: a function header must be tried before a declaration, and a
// declaration before an assignment.
func (p *Parser) parseStatement() ast.Stmt {
	w := p.cur.window(maxLookahead)
	d := p.opts.Dialect

	switch {
	case isPreprocessor(w):
		return p.parsePreprocessor()
	case isImport(w):
		return p.parseImport()
	case isClass(w, d):
		return p.parseClass()
	case isStructOrEnum(w):
		return p.parseStructOrEnum()
	case isFunctionDeclaration(w, d):
		return p.parseFunction()
	case isIfKeyword(w):
		return p.parseIf()
	case isSwitchKeyword(w):
		return p.parseSwitch()
	case isLoopKeyword(w):
		return p.parseLoop()
	case isExitStatement(w):
		return p.parseExit()
	case isBlockStart(w):
		return p.parseBlock()
	case isDeclaration(w, d):
		return p.parseDeclaration()
	case isAssignment(w):
		return p.parseAssignment()
	case isIncDec(w), isFunctionCall(w):
		return p.parseExprStmt()
	}

	tok := p.cur.cur()
	switch {
	case tok.IsPunct(";"):
		p.cur.next()
	case canStartExpression(tok):
		return p.parseExprStmt()
	case tok.Kind == token.KEYWORD:
		p.errorf(errUnexpectedKw, tok.Text)
		p.cur.next()
		p.synchronize()
	}
	return nil
}

// parseStatementsUntil parses statements until stop matches or input ends.
func (p *Parser) parseStatementsUntil(stop func(token.Token) bool) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.cur.atEOF() && !stop(p.cur.cur()) {
		if s := p.statement(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func isCloseBrace(t token.Token) bool {
	return t.IsPunct("}")
}

func isCaseEnd(t token.Token) bool {
	return t.IsKeyword("case") || t.IsKeyword("default") || t.IsPunct("}")
}

// parseExprStmt parses an expression followed by ';'.
func (p *Parser) parseExprStmt() ast.Stmt {
	start := p.cur.cur().Pos
	x := p.parseExpression(precComma)
	if _, bad := x.(*ast.BadExpr); bad {
		p.synchronize()
		return nil
	}
	p.endStatement()
	return &ast.ExprStmt{
		BaseStmt: ast.MakeBaseStmt(start, p.cur.last().Pos),
		X:        x,
	}
}

// -----------------------------------------------------------------------------
// Blocks
// -----------------------------------------------------------------------------

// parseBlock parses { ... } in a new scope. The scope is closed even when
// the block is not.
func (p *Parser) parseBlock() *ast.Block {
	open := p.cur.next()
	p.syms.PushScope()
	defer p.syms.PopScope()

	stmts := p.parseStatementsUntil(isCloseBrace)
	return p.closeBlock(open, stmts)
}

// closeBlock consumes the '}' matching open, or reports it missing.
func (p *Parser) closeBlock(open token.Token, stmts []ast.Stmt) *ast.Block {
	if p.cur.cur().IsPunct("}") {
		p.cur.next()
	} else {
		p.diags.Syntaxf(open.Pos, errUnclosedBlock)
	}
	return &ast.Block{
		BaseStmt: ast.MakeBaseStmt(open.Pos, p.cur.last().Pos),
		Stmts:    stmts,
	}
}

// parseBody parses the body of an if, else or loop. A single statement
// without braces is wrapped in a Block with its own scope.
func (p *Parser) parseBody() *ast.Block {
	tok := p.cur.cur()
	switch {
	case tok.IsPunct("{"):
		return p.parseBlock()
	case tok.IsPunct(";"):
		p.cur.next()
		return &ast.Block{BaseStmt: ast.MakeBaseStmt(tok.Pos, tok.Pos)}
	case p.cur.atEOF(), tok.IsPunct("}"):
		p.errorf("%s", expected("statement", tok))
		return &ast.Block{BaseStmt: ast.MakeBaseStmt(tok.Pos, tok.Pos)}
	}

	p.syms.PushScope()
	defer p.syms.PopScope()
	var stmts []ast.Stmt
	if s := p.statement(); s != nil {
		stmts = append(stmts, s)
	}
	return &ast.Block{
		BaseStmt: ast.MakeBaseStmt(tok.Pos, p.cur.last().Pos),
		Stmts:    stmts,
	}
}

// -----------------------------------------------------------------------------
// Control flow
// -----------------------------------------------------------------------------

// parseParenCondition parses "( condition )".
func (p *Parser) parseParenCondition() (ast.Expr, bool) {
	if !p.expectPunct("(") {
		return nil, false
	}
	cond := p.parseCondition()
	if !p.expectPunct(")") {
		return cond, false
	}
	return cond, true
}

// parseIf parses if, any number of else-if arms and an optional else.
func (p *Parser) parseIf() ast.Stmt {
	start := p.cur.next().Pos
	cond, ok := p.parseParenCondition()
	if !ok {
		p.synchronize()
		return nil
	}
	stmt := &ast.IfStmt{Cond: cond, Then: p.parseBody()}

	for p.cur.cur().IsKeyword("else") {
		elsePos := p.cur.next().Pos
		if !p.cur.cur().IsKeyword("if") {
			stmt.Else = p.parseBody()
			break
		}
		p.cur.next()
		cond, ok := p.parseParenCondition()
		if !ok {
			p.synchronize()
			break
		}
		body := p.parseBody()
		stmt.ElseIfs = append(stmt.ElseIfs, &ast.ElseIf{
			BaseNode: ast.MakeBaseNode(elsePos, p.cur.last().Pos),
			Cond:     cond,
			Body:     body,
		})
	}

	stmt.BaseStmt = ast.MakeBaseStmt(start, p.cur.last().Pos)
	return stmt
}

// parseSwitch parses switch (tag) { case ...: ... default: ... }.
func (p *Parser) parseSwitch() ast.Stmt {
	start := p.cur.next().Pos
	if !p.expectPunct("(") {
		p.synchronize()
		return nil
	}
	tag := p.parseExpression(precComma)
	if !p.expectPunct(")") {
		p.synchronize()
		return nil
	}
	open := p.cur.cur()
	if !p.expectPunct("{") {
		p.synchronize()
		return nil
	}

	p.syms.PushScope()
	defer p.syms.PopScope()
	p.switchDepth++
	defer func() { p.switchDepth-- }()

	stmt := &ast.SwitchStmt{Tag: tag}
	seen := make(map[string]bool)
	for !p.cur.atEOF() && !p.cur.cur().IsPunct("}") {
		tok := p.cur.cur()
		switch {
		case tok.IsKeyword("case"):
			stmt.Cases = append(stmt.Cases, p.parseCase(tag, seen))
		case tok.IsKeyword("default"):
			c := p.parseCase(tag, seen)
			if stmt.Default != nil {
				p.semanticf(c.Pos(), semantic.ErrDuplicateLabel)
				continue
			}
			stmt.Default = c
		default:
			p.errorf(errOutsideCase)
			p.statement()
		}
	}

	if p.cur.cur().IsPunct("}") {
		p.cur.next()
	} else {
		p.diags.Syntaxf(open.Pos, errUnclosedBlock)
	}
	stmt.BaseStmt = ast.MakeBaseStmt(start, p.cur.last().Pos)
	return stmt
}

// parseCase parses one "case value:" or "default:" clause and its body.
func (p *Parser) parseCase(tag ast.Expr, seen map[string]bool) *ast.CaseClause {
	kw := p.cur.next()
	var value ast.Expr
	if kw.Text == "case" {
		value = p.parseExpression(precOr)
		if ast.IsConstant(value) {
			key := ast.String(value)
			if seen[key] {
				p.semanticf(value.Pos(), semantic.ErrDuplicateCase, key)
			}
			seen[key] = true
		}
		if !semantic.Comparable(tag.DataType(), value.DataType()) {
			p.semanticf(value.Pos(), semantic.ErrCompareMismatch, tag.DataType(), value.DataType())
		}
	}
	if !p.expectPunct(":") {
		p.synchronize()
	}

	body := p.parseStatementsUntil(isCaseEnd)
	if !p.opts.AllowFallthrough && len(body) > 0 && !endsCase(body[len(body)-1]) {
		p.semanticf(kw.Pos, semantic.ErrMissingBreak, kw.Text)
	}
	return &ast.CaseClause{
		BaseNode: ast.MakeBaseNode(kw.Pos, p.cur.last().Pos),
		Value:    value,
		Body:     body,
	}
}

// endsCase reports whether s leaves the switch or the enclosing function.
func endsCase(s ast.Stmt) bool {
	switch s := s.(type) {
	case *ast.BreakStmt, *ast.ReturnStmt, *ast.ContinueStmt:
		return true
	case *ast.Block:
		return len(s.Stmts) > 0 && endsCase(s.Stmts[len(s.Stmts)-1])
	}
	return false
}

func (p *Parser) parseLoop() ast.Stmt {
	switch p.cur.cur().Text {
	case "for":
		return p.parseFor()
	case "while":
		return p.parseWhile()
	default:
		return p.parseDoWhile()
	}
}

// loopBody parses a loop body with break and continue allowed.
func (p *Parser) loopBody() *ast.Block {
	p.loopDepth++
	defer func() { p.loopDepth-- }()
	return p.parseBody()
}

func (p *Parser) parseWhile() ast.Stmt {
	start := p.cur.next().Pos
	cond, ok := p.parseParenCondition()
	if !ok {
		p.synchronize()
		return nil
	}
	body := p.loopBody()
	return &ast.WhileLoop{
		BaseStmt: ast.MakeBaseStmt(start, p.cur.last().Pos),
		Cond:     cond,
		Body:     body,
	}
}

func (p *Parser) parseDoWhile() ast.Stmt {
	start := p.cur.next().Pos
	body := p.loopBody()
	if !p.cur.cur().IsKeyword("while") {
		p.errorf("%s", expected("'while'", p.cur.cur()))
		p.synchronize()
		return nil
	}
	p.cur.next()
	cond, ok := p.parseParenCondition()
	if !ok {
		p.synchronize()
		return nil
	}
	p.endStatement()
	return &ast.DoWhileLoop{
		BaseStmt: ast.MakeBaseStmt(start, p.cur.last().Pos),
		Body:     body,
		Cond:     cond,
	}
}

// parseFor parses for (init; cond; post) body. Names declared in the
// init clause are scoped to the loop.
func (p *Parser) parseFor() ast.Stmt {
	start := p.cur.next().Pos
	if !p.expectPunct("(") {
		p.synchronize()
		return nil
	}
	p.syms.PushScope()
	defer p.syms.PopScope()

	loop := &ast.ForLoop{}
	w := p.cur.window(maxLookahead)
	switch {
	case p.cur.cur().IsPunct(";"):
		p.cur.next()
	case isDeclaration(w, p.opts.Dialect):
		loop.Init = p.parseDeclaration()
	case isAssignment(w):
		loop.Init = p.parseAssignment()
	default:
		loop.Init = p.parseExprStmt()
	}

	if !p.cur.cur().IsPunct(";") {
		loop.Cond = p.parseCondition()
	}
	if !p.expectPunct(";") {
		p.synchronize()
		return nil
	}

	if !p.cur.cur().IsPunct(")") {
		if isAssignment(p.cur.window(maxLookahead)) {
			if a := p.assignmentClause(); a != nil {
				loop.Post = a
			}
		} else {
			postPos := p.cur.cur().Pos
			x := p.parseExpression(precComma)
			loop.Post = &ast.ExprStmt{BaseStmt: ast.MakeBaseStmt(postPos, x.End()), X: x}
		}
	}
	if !p.expectPunct(")") {
		p.synchronize()
		return nil
	}

	loop.Body = p.loopBody()
	loop.BaseStmt = ast.MakeBaseStmt(start, p.cur.last().Pos)
	return loop
}

// parseExit parses break, continue and return, checking that each
// appears in a context that allows it.
func (p *Parser) parseExit() ast.Stmt {
	kw := p.cur.next()
	var value ast.Expr

	switch kw.Text {
	case "break":
		if p.loopDepth == 0 && p.switchDepth == 0 {
			p.semanticf(kw.Pos, semantic.ErrBreakOutside)
		}
	case "continue":
		if p.loopDepth == 0 {
			p.semanticf(kw.Pos, semantic.ErrContinueOutside)
		}
	case "return":
		if !p.cur.cur().IsPunct(";") {
			value = p.parseExpression(precComma)
		}
		p.checkReturn(kw.Pos, value)
	}
	p.endStatement()

	base := ast.MakeBaseStmt(kw.Pos, p.cur.last().Pos)
	switch kw.Text {
	case "break":
		return &ast.BreakStmt{BaseStmt: base}
	case "continue":
		return &ast.ContinueStmt{BaseStmt: base}
	default:
		return &ast.ReturnStmt{BaseStmt: base, Value: value}
	}
}

// checkReturn validates a return against the enclosing function.
func (p *Parser) checkReturn(pos token.Position, value ast.Expr) {
	if p.fn == nil {
		p.semanticf(pos, semantic.ErrReturnOutside)
		return
	}
	ret := p.fn.ReturnType
	isVoid := semantic.ClassOf(ret) == semantic.ClassVoid
	switch {
	case value == nil && !isVoid:
		p.semanticf(pos, semantic.ErrReturnMissing, p.fn.Name, ret)
	case value == nil:
	case isVoid:
		p.semanticf(value.Pos(), semantic.ErrReturnValue, typeName(value.DataType()), p.fn.Name, ret)
	case !semantic.Assignable(ret, value.DataType()):
		p.semanticf(value.Pos(), semantic.ErrReturnValue, value.DataType(), p.fn.Name, ret)
	}
}

// typeName renders a possibly unknown data type for messages.
func typeName(typ string) string {
	if typ == "" {
		return "a value of unknown type"
	}
	return typ
}
