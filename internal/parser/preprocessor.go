package parser

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"

	"github.com/kolkov/toyc/internal/ast"
	"github.com/kolkov/toyc/internal/semantic"
	"github.com/kolkov/toyc/internal/token"
)

var (
	directiveHead = mustCompile(`^#[ \t]*[A-Za-z_][A-Za-z0-9_]*`)
	systemInclude = mustCompile(`^<[^<>]+>$`)
	localInclude  = mustCompile(`^"[^"]+"$`)
	macroName     = mustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("parser: bad pattern %q: %v", pattern, err))
	}
	return re
}

// Directives accepted without further checks.
var knownDirectives = map[string]bool{
	"undef": true, "ifdef": true, "ifndef": true, "if": true, "elif": true,
	"else": true, "endif": true, "pragma": true, "error": true, "line": true,
}

// parsePreprocessor splits a "#name arg" line. #include targets are
// validated and #define records the macro name as an initialized symbol.
func (p *Parser) parsePreprocessor() ast.Stmt {
	tok := p.cur.next()
	if p.opts.Dialect != token.C {
		p.diags.Syntaxf(tok.Pos, errNoDirectives, p.opts.Dialect)
		return nil
	}
	d := &ast.PreprocessorDirective{BaseStmt: ast.MakeBaseStmt(tok.Pos, tok.Pos)}

	loc := directiveHead.FindStringIndex(tok.Text)
	if loc == nil {
		p.diags.Syntaxf(tok.Pos, errUnknownDirective, strings.TrimSpace(strings.TrimPrefix(tok.Text, "#")))
		return d
	}
	d.Name = strings.TrimSpace(strings.TrimPrefix(tok.Text[:loc[1]], "#"))
	d.Arg = strings.TrimSpace(tok.Text[loc[1]:])

	switch d.Name {
	case "include":
		switch {
		case systemInclude.MatchString(d.Arg):
			d.File, d.System = d.Arg[1:len(d.Arg)-1], true
		case localInclude.MatchString(d.Arg):
			d.File = d.Arg[1 : len(d.Arg)-1]
		default:
			p.diags.Syntaxf(tok.Pos, errIncludeTarget, d.Arg)
		}
	case "define":
		p.define(tok.Pos, d.Arg)
	default:
		if !knownDirectives[d.Name] {
			p.diags.Syntaxf(tok.Pos, errUnknownDirective, d.Name)
		}
	}
	return d
}

// define declares the macro named by a #define argument. A function-like
// macro "MAX(a, b) ..." is recorded under MAX.
func (p *Parser) define(pos token.Position, arg string) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		p.diags.Syntaxf(pos, errDefineName, "")
		return
	}
	name, _, _ := strings.Cut(fields[0], "(")
	if !macroName.MatchString(name) {
		p.diags.Syntaxf(pos, errDefineName, name)
		return
	}
	p.syms.Declare(name, semantic.TypeMacro, pos)
	p.syms.Assign(name)
}
