package parser

import (
	"fmt"

	"github.com/kolkov/toyc/internal/token"
)

// Messages for syntax diagnostics.
const (
	errUnclosedBlock    = "unclosed block: missing '}'"
	errUnclosedCall     = "unclosed call to %q: missing ')'"
	errUnclosedIndex    = "unclosed index: missing ']'"
	errUnmatchedBrace   = "unmatched '}'"
	errUnrecognized     = "unrecognized token %s"
	errUnexpectedKw     = "unexpected keyword %q"
	errInvalidTarget    = "invalid assignment target"
	errOutsideCase      = "statement in switch body is not under a case label"
	errUnknownDirective = "unknown preprocessor directive #%s"
	errNoDirectives     = "preprocessor directives are not supported in %s"
	errIncludeTarget    = "malformed #include target %q"
	errDefineName       = "malformed #define: %q is not a valid macro name"
)

// expected formats the message for a missing token.
func expected(want string, got token.Token) string {
	return fmt.Sprintf("expected %s, got %s", want, got)
}

// errorf records a syntax diagnostic at the current token.
func (p *Parser) errorf(format string, args ...any) {
	p.diags.Syntaxf(p.cur.cur().Pos, format, args...)
}

// semanticf records a semantic diagnostic at pos.
func (p *Parser) semanticf(pos token.Position, format string, args ...any) {
	p.diags.Semanticf(pos, format, args...)
}

// expectPunct consumes the punctuator text or reports what was found.
func (p *Parser) expectPunct(text string) bool {
	if p.cur.cur().IsPunct(text) {
		p.cur.next()
		return true
	}
	p.errorf("%s", expected(fmt.Sprintf("'%s'", text), p.cur.cur()))
	return false
}

// expectIdent consumes an identifier or reports what was found. A
// malformed identifier is consumed and reported as unrecognized.
func (p *Parser) expectIdent(what string) (token.Token, bool) {
	tok := p.cur.cur()
	if tok.Kind != token.IDENTIFIER {
		p.errorf("%s", expected(what, tok))
		return tok, false
	}
	p.cur.next()
	return tok, p.checkIdent(tok)
}

var (
	cIdent    = mustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	javaIdent = mustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// checkIdent reports an identifier token the lexer produced only as a
// best effort, such as "12abc" or "@".
func (p *Parser) checkIdent(tok token.Token) bool {
	re := cIdent
	if p.opts.Dialect == token.Java {
		re = javaIdent
	}
	if re.MatchString(tok.Text) {
		return true
	}
	p.diags.Syntaxf(tok.Pos, errUnrecognized, tok)
	return false
}

// endStatement consumes the terminating ';'. On failure it reports and
// recovers to the next statement boundary.
func (p *Parser) endStatement() {
	if !p.expectPunct(";") {
		p.synchronize()
	}
}

// synchronize discards tokens after a syntax error, tracking brace depth.
// It stops after a ';' at depth zero, or before a statement keyword or an
// unmatched '}' at depth zero, or at end of input.
func (p *Parser) synchronize() {
	depth := 0
	for !p.cur.atEOF() {
		tok := p.cur.cur()
		switch {
		case tok.IsPunct("{"):
			depth++
		case tok.IsPunct("}"):
			if depth == 0 {
				return
			}
			depth--
		case depth == 0 && tok.IsPunct(";"):
			p.cur.next()
			return
		case depth == 0 && token.IsStatementKeyword(tok):
			return
		}
		p.cur.next()
	}
}
