package parser

import (
	"strings"

	"github.com/kolkov/toyc/internal/ast"
	"github.com/kolkov/toyc/internal/semantic"
	"github.com/kolkov/toyc/internal/token"
)

// parseTypeSpec consumes the type matched by typeSpecLen. Modifiers are
// dropped from the returned name; a Java-style "[]" suffix sets isArray.
func (p *Parser) parseTypeSpec() (typ string, isArray bool) {
	n := typeSpecLen(p.cur.window(maxLookahead), p.opts.Dialect)
	var words []string
	stars := ""
	for range n {
		tok := p.cur.next()
		switch {
		case tok.Kind == token.KEYWORD && token.IsModifier(p.opts.Dialect, tok.Text):
		case tok.IsOp("*"):
			stars += "*"
		case tok.IsPunct("["):
			isArray = true
		case tok.IsPunct("]"):
		default:
			words = append(words, tok.Text)
		}
	}
	return strings.Join(words, " ") + stars, isArray
}

// isAggregate reports whether typ names a struct or union, whose storage
// counts as initialized once declared.
func isAggregate(typ string) bool {
	return strings.HasPrefix(typ, "struct ") || strings.HasPrefix(typ, "union ")
}

// -----------------------------------------------------------------------------
// Variables
// -----------------------------------------------------------------------------

// parseDeclaration parses "type a, b[3] = {1, 2}, c = 4;". Several
// declarators produce a DeclGroup.
func (p *Parser) parseDeclaration() ast.Stmt {
	start := p.cur.cur().Pos
	typ, isArray := p.parseTypeSpec()

	var decls []ast.Stmt
	for {
		d := p.parseDeclarator(typ, isArray)
		if d == nil {
			p.synchronize()
			return group(start, p.cur.last().Pos, decls)
		}
		decls = append(decls, d)
		if !p.cur.cur().IsPunct(",") {
			break
		}
		p.cur.next()
	}
	p.endStatement()
	return group(start, p.cur.last().Pos, decls)
}

func group(start, end token.Position, decls []ast.Stmt) ast.Stmt {
	switch len(decls) {
	case 0:
		return nil
	case 1:
		return decls[0]
	}
	return &ast.DeclGroup{BaseStmt: ast.MakeBaseStmt(start, end), Decls: decls}
}

// parseDeclarator parses one "name[size] = value". The name is declared
// before its initializer is parsed, so "int x = x;" reads an unassigned x.
func (p *Parser) parseDeclarator(typ string, isArray bool) ast.Stmt {
	nameTok, ok := p.expectIdent("variable name")
	if !ok {
		return nil
	}
	var size ast.Expr
	for p.cur.cur().IsPunct("[") {
		p.cur.next()
		isArray = true
		if !p.cur.cur().IsPunct("]") {
			size = p.parseExpression(precComma)
		}
		if !p.expectPunct("]") {
			return nil
		}
	}

	if semantic.ClassOf(typ) == semantic.ClassVoid {
		p.semanticf(nameTok.Pos, semantic.ErrVoidVariable, nameTok.Text)
	}
	v := &semantic.VarInfo{
		Name:        nameTok.Text,
		Type:        typ,
		IsArray:     isArray,
		Initialized: isArray || isAggregate(typ),
		Pos:         nameTok.Pos,
	}
	if !p.syms.DeclareVar(v) {
		p.semanticf(nameTok.Pos, semantic.ErrAlreadyDeclared, nameTok.Text)
	}

	if !p.cur.cur().IsOp("=") {
		return &ast.Declaration{
			BaseStmt:  ast.MakeBaseStmt(nameTok.Pos, p.cur.last().Pos),
			Type:      typ,
			Name:      nameTok.Text,
			IsArray:   isArray,
			ArraySize: size,
		}
	}
	p.cur.next()
	value := p.parseInitializer()
	p.syms.Assign(nameTok.Text)
	p.checkAssignable(nameTok.Pos, nameTok.Text, typ, isArray, value)

	return &ast.Assignment{
		BaseStmt:  ast.MakeBaseStmt(nameTok.Pos, p.cur.last().Pos),
		Type:      typ,
		Name:      nameTok.Text,
		Op:        "=",
		Value:     value,
		IsArray:   isArray,
		ArraySize: size,
	}
}

func (p *Parser) parseInitializer() ast.Expr {
	if p.cur.cur().IsPunct("{") {
		return p.parseInitList()
	}
	return p.parseExpression(precAssign)
}

// checkAssignable reports a value whose type cannot be stored in name.
// Initializer lists are checked element by element, and a char array may
// take a string.
func (p *Parser) checkAssignable(pos token.Position, name, typ string, isArray bool, value ast.Expr) {
	if list, ok := value.(*ast.InitList); ok {
		for _, e := range list.Elems {
			p.checkAssignable(e.Pos(), name, typ, false, e)
		}
		return
	}
	src := value.DataType()
	if isArray && semantic.ClassOf(typ) == semantic.ClassChar && semantic.ClassOf(src) == semantic.ClassString {
		return
	}
	if !semantic.Assignable(typ, src) {
		p.semanticf(pos, semantic.ErrTypeMismatch, src, typ, name)
	}
}

// parseAssignment parses a reassignment statement: "x = 1;", "a[i] += 2;".
func (p *Parser) parseAssignment() ast.Stmt {
	a := p.assignmentClause()
	if a == nil {
		p.synchronize()
		return nil
	}
	p.endStatement()
	a.EndPos = p.cur.last().Pos
	return a
}

// assignmentClause parses an assignment without its terminator, as used
// by statements and for-loop clauses.
func (p *Parser) assignmentClause() *ast.Assignment {
	nameTok := p.cur.next()
	if !p.checkIdent(nameTok) {
		return nil
	}
	info, declared := p.syms.Lookup(nameTok.Text)
	path := nameTok.Text
	typ := ""
	if declared {
		typ = info.Type
	}

	for p.cur.cur().IsPunct(".") {
		p.cur.next()
		field := p.cur.cur()
		if !isMember(field) {
			p.errorf("%s", expected("field name", field))
			return nil
		}
		p.cur.next()
		path += "." + field.Text
		typ = ""
	}

	var index []ast.Expr
	for p.cur.cur().IsPunct("[") {
		p.cur.next()
		index = append(index, p.parseExpression(precComma))
		if !p.expectPunct("]") {
			return nil
		}
	}

	op := p.cur.cur()
	if op.Kind != token.OPERATOR || !token.IsAssignOp(op.Text) {
		p.errorf("%s", expected("assignment operator", op))
		return nil
	}
	p.cur.next()

	switch {
	case !declared:
		p.semanticf(nameTok.Pos, semantic.ErrUndeclared, nameTok.Text)
	case op.Text != "=" && !info.Initialized:
		p.semanticf(nameTok.Pos, semantic.ErrUninitialized, nameTok.Text)
	}

	value := p.parseExpression(precAssign)

	if declared {
		p.syms.Assign(nameTok.Text)
		wholeArray := info.IsArray && len(index) == 0 && path == nameTok.Text
		switch {
		case wholeArray && p.opts.Dialect == token.C:
			p.semanticf(nameTok.Pos, semantic.ErrArrayNotIndexed, nameTok.Text)
		case wholeArray:
		case op.Text == "=":
			p.checkAssignable(nameTok.Pos, path, typ, false, value)
		default:
			binop := strings.TrimSuffix(op.Text, "=")
			if _, ok := semantic.BinaryResult(binop, typ, value.DataType()); !ok {
				p.semanticf(op.Pos, semantic.ErrBadOperand, binop, typeName(typ), typeName(value.DataType()))
			}
		}
	}

	return &ast.Assignment{
		BaseStmt: ast.MakeBaseStmt(nameTok.Pos, p.cur.last().Pos),
		Name:     path,
		Index:    index,
		Op:       op.Text,
		Value:    value,
	}
}

// -----------------------------------------------------------------------------
// Functions
// -----------------------------------------------------------------------------

// parseFunction parses a prototype "int f(int a);" or a definition. The
// function is recorded before its body so recursive calls resolve.
func (p *Parser) parseFunction() ast.Stmt {
	start := p.cur.cur().Pos
	ret, _ := p.parseTypeSpec()
	nameTok := p.cur.next()
	p.cur.next() // (
	if !p.checkIdent(nameTok) {
		p.synchronize()
		return nil
	}

	params, ok := p.parseParams()
	if !ok {
		p.synchronize()
		return nil
	}
	info := &semantic.FuncInfo{Name: nameTok.Text, ReturnType: ret, Pos: nameTok.Pos}
	for _, prm := range params {
		typ := prm.Type
		if prm.IsArray {
			typ += "[]"
		}
		info.ParamTypes = append(info.ParamTypes, typ)
	}
	decl := &ast.FunctionDecl{ReturnType: ret, Name: nameTok.Text, Params: params}

	switch tok := p.cur.cur(); {
	case tok.IsPunct(";"):
		p.cur.next()
		p.declareFunc(info)
	case tok.IsPunct("{"):
		info.Defined = true
		p.declareFunc(info)
		decl.Body = p.parseFunctionBody(info, params)
	default:
		p.errorf("%s", expected("';' or '{'", tok))
		p.synchronize()
		return nil
	}

	decl.BaseStmt = ast.MakeBaseStmt(start, p.cur.last().Pos)
	return decl
}

func (p *Parser) declareFunc(info *semantic.FuncInfo) {
	if prev, ok := p.syms.LookupFunc(info.Name); ok && !sameSignature(prev, info) {
		p.semanticf(info.Pos, semantic.ErrFuncConflict, info.Name)
	}
	if !p.syms.DeclareFunc(info) {
		p.semanticf(info.Pos, semantic.ErrFuncRedefined, info.Name)
	}
}

func sameSignature(a, b *semantic.FuncInfo) bool {
	if a.ReturnType != b.ReturnType || len(a.ParamTypes) != len(b.ParamTypes) {
		return false
	}
	for i := range a.ParamTypes {
		if a.ParamTypes[i] != b.ParamTypes[i] {
			return false
		}
	}
	return true
}

// parseParams parses a parameter list after '(' through ')'.
// "(void)" is an empty list.
func (p *Parser) parseParams() ([]*ast.Param, bool) {
	if p.cur.cur().IsKeyword("void") && p.cur.peek(1).IsPunct(")") {
		p.cur.next()
	}
	var params []*ast.Param
	for !p.cur.cur().IsPunct(")") {
		if len(params) > 0 && !p.expectPunct(",") {
			return params, false
		}
		start := p.cur.cur().Pos
		if typeSpecLen(p.cur.window(maxLookahead), p.opts.Dialect) == 0 {
			p.errorf("%s", expected("parameter type", p.cur.cur()))
			return params, false
		}
		typ, isArray := p.parseTypeSpec()
		nameTok, ok := p.expectIdent("parameter name")
		if !ok {
			return params, false
		}
		for p.cur.cur().IsPunct("[") {
			p.cur.next()
			if !p.cur.cur().IsPunct("]") {
				p.parseExpression(precComma)
			}
			if !p.expectPunct("]") {
				return params, false
			}
			isArray = true
		}
		params = append(params, &ast.Param{
			BaseNode: ast.MakeBaseNode(start, p.cur.last().Pos),
			Type:     typ,
			Name:     nameTok.Text,
			IsArray:  isArray,
		})
	}
	p.cur.next() // )
	return params, true
}

// parseFunctionBody parses the body with parameters declared in its
// outermost scope. Loop and switch context does not leak in.
func (p *Parser) parseFunctionBody(info *semantic.FuncInfo, params []*ast.Param) *ast.Block {
	open := p.cur.next()
	p.syms.PushScope()
	defer p.syms.PopScope()

	for _, prm := range params {
		v := &semantic.VarInfo{Name: prm.Name, Type: prm.Type, IsArray: prm.IsArray, Initialized: true, Pos: prm.Pos()}
		if !p.syms.DeclareVar(v) {
			p.semanticf(prm.Pos(), semantic.ErrAlreadyDeclared, prm.Name)
		}
	}

	outer, loops, switches := p.fn, p.loopDepth, p.switchDepth
	p.fn, p.loopDepth, p.switchDepth = info, 0, 0
	defer func() { p.fn, p.loopDepth, p.switchDepth = outer, loops, switches }()

	stmts := p.parseStatementsUntil(isCloseBrace)
	closed := p.cur.cur().IsPunct("}")
	body := p.closeBlock(open, stmts)
	if closed && needsReturn(info) && !semantic.Terminates(stmts) {
		p.semanticf(p.cur.last().Pos, semantic.ErrNoReturn, info.Name, info.ReturnType)
	}
	return body
}

// needsReturn reports whether every path through the function must return
// a value. main is exempt since falling off its end returns 0.
func needsReturn(info *semantic.FuncInfo) bool {
	return info.Name != "main" && semantic.ClassOf(info.ReturnType) != semantic.ClassVoid
}

// -----------------------------------------------------------------------------
// Structs, enums, classes and imports
// -----------------------------------------------------------------------------

func (p *Parser) parseStructOrEnum() ast.Stmt {
	if p.cur.cur().IsKeyword("enum") {
		return p.parseEnum()
	}
	return p.parseStruct()
}

// parseStruct parses struct or union definitions with optional trailing
// variables: "struct point { int x; int y; } origin;".
func (p *Parser) parseStruct() ast.Stmt {
	kw := p.cur.next()
	decl := &ast.StructDecl{Keyword: kw.Text}
	if p.cur.cur().Kind == token.IDENTIFIER {
		decl.Name = p.cur.next().Text
	}
	open := p.cur.next() // {

	seen := make(map[string]bool)
	for !p.cur.atEOF() && !p.cur.cur().IsPunct("}") {
		start := p.cur.mark()
		m := p.parseMember()
		if m == nil {
			p.synchronize()
			if p.cur.mark() == start {
				p.cur.next()
			}
			continue
		}
		if seen[m.Name] {
			p.semanticf(m.Pos(), semantic.ErrDuplicateMember, m.Name, kw.Text, decl.Name)
		}
		seen[m.Name] = true
		decl.Members = append(decl.Members, m)
	}
	if !p.cur.cur().IsPunct("}") {
		p.diags.Syntaxf(open.Pos, errUnclosedBlock)
		decl.BaseStmt = ast.MakeBaseStmt(kw.Pos, p.cur.last().Pos)
		return decl
	}
	p.cur.next()

	p.trailingDeclarators(kw.Text + " " + decl.Name)
	p.endStatement()
	decl.BaseStmt = ast.MakeBaseStmt(kw.Pos, p.cur.last().Pos)
	return decl
}

// parseMember parses one "type name[size];" inside a struct body.
// Members are not variables and stay out of the symbol table.
func (p *Parser) parseMember() *ast.Declaration {
	start := p.cur.cur().Pos
	if typeSpecLen(p.cur.window(maxLookahead), p.opts.Dialect) == 0 {
		p.errorf("%s", expected("member declaration", p.cur.cur()))
		return nil
	}
	typ, isArray := p.parseTypeSpec()
	nameTok, ok := p.expectIdent("member name")
	if !ok {
		return nil
	}
	var size ast.Expr
	for p.cur.cur().IsPunct("[") {
		p.cur.next()
		isArray = true
		if !p.cur.cur().IsPunct("]") {
			size = p.parseExpression(precComma)
		}
		if !p.expectPunct("]") {
			return nil
		}
	}
	if !p.expectPunct(";") {
		return nil
	}
	return &ast.Declaration{
		BaseStmt:  ast.MakeBaseStmt(start, p.cur.last().Pos),
		Type:      typ,
		Name:      nameTok.Text,
		IsArray:   isArray,
		ArraySize: size,
	}
}

// trailingDeclarators declares the variables named after a struct, union
// or enum body.
func (p *Parser) trailingDeclarators(typ string) {
	for p.cur.cur().Kind == token.IDENTIFIER {
		tok := p.cur.next()
		if !p.checkIdent(tok) {
			return
		}
		v := &semantic.VarInfo{Name: tok.Text, Type: typ, Initialized: isAggregate(typ), Pos: tok.Pos}
		if !p.syms.DeclareVar(v) {
			p.semanticf(tok.Pos, semantic.ErrAlreadyDeclared, tok.Text)
		}
		if !p.cur.cur().IsPunct(",") {
			return
		}
		p.cur.next()
	}
}

// parseEnum parses "enum color { RED, GREEN = 4 };". Enumerators are
// declared as initialized int variables in the current scope.
func (p *Parser) parseEnum() ast.Stmt {
	kw := p.cur.next()
	decl := &ast.EnumDecl{}
	if p.cur.cur().Kind == token.IDENTIFIER {
		decl.Name = p.cur.next().Text
	}
	open := p.cur.next() // {

	for !p.cur.atEOF() && !p.cur.cur().IsPunct("}") {
		if len(decl.Enumerators) > 0 {
			if !p.expectPunct(",") {
				p.synchronize()
				break
			}
			if p.cur.cur().IsPunct("}") {
				break
			}
		}
		tok, ok := p.expectIdent("enumerator name")
		if !ok {
			p.synchronize()
			break
		}
		var value ast.Expr
		if p.cur.cur().IsOp("=") {
			p.cur.next()
			value = p.parseExpression(precAssign)
		}
		v := &semantic.VarInfo{Name: tok.Text, Type: semantic.TypeInt, Initialized: true, Pos: tok.Pos}
		if !p.syms.DeclareVar(v) {
			p.semanticf(tok.Pos, semantic.ErrAlreadyDeclared, tok.Text)
		}
		decl.Enumerators = append(decl.Enumerators, &ast.Enumerator{
			BaseNode: ast.MakeBaseNode(tok.Pos, p.cur.last().Pos),
			Name:     tok.Text,
			Value:    value,
		})
	}
	if !p.cur.cur().IsPunct("}") {
		p.diags.Syntaxf(open.Pos, errUnclosedBlock)
		decl.BaseStmt = ast.MakeBaseStmt(kw.Pos, p.cur.last().Pos)
		return decl
	}
	p.cur.next()

	p.trailingDeclarators("enum " + decl.Name)
	p.endStatement()
	decl.BaseStmt = ast.MakeBaseStmt(kw.Pos, p.cur.last().Pos)
	return decl
}

// parseClass parses a Java class. Fields take default values, so they
// count as initialized for the methods that follow them.
func (p *Parser) parseClass() ast.Stmt {
	start := p.cur.cur().Pos
	for !p.cur.cur().IsKeyword("class") {
		p.cur.next()
	}
	p.cur.next()
	nameTok, ok := p.expectIdent("class name")
	if !ok {
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

	decl := &ast.ClassDecl{Name: nameTok.Text}
	for !p.cur.atEOF() && !p.cur.cur().IsPunct("}") {
		s := p.statement()
		if s == nil {
			continue
		}
		p.initializeFields(s)
		decl.Members = append(decl.Members, s)
	}
	if p.cur.cur().IsPunct("}") {
		p.cur.next()
	} else {
		p.diags.Syntaxf(open.Pos, errUnclosedBlock)
	}
	decl.BaseStmt = ast.MakeBaseStmt(start, p.cur.last().Pos)
	return decl
}

func (p *Parser) initializeFields(s ast.Stmt) {
	switch d := s.(type) {
	case *ast.Declaration:
		p.syms.Assign(d.Name)
	case *ast.DeclGroup:
		for _, x := range d.Decls {
			p.initializeFields(x)
		}
	}
}

// parseImport parses "import java.util.*;".
func (p *Parser) parseImport() ast.Stmt {
	kw := p.cur.next()
	var parts []string
	for {
		tok := p.cur.cur()
		if tok.Kind != token.IDENTIFIER && !tok.IsOp("*") {
			p.errorf("%s", expected("package name", tok))
			p.synchronize()
			return nil
		}
		parts = append(parts, p.cur.next().Text)
		if !p.cur.cur().IsPunct(".") {
			break
		}
		p.cur.next()
	}
	p.endStatement()
	return &ast.ImportDecl{
		BaseStmt: ast.MakeBaseStmt(kw.Pos, p.cur.last().Pos),
		Path:     strings.Join(parts, "."),
	}
}
