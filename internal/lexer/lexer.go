// Package lexer turns toy C-family source text into classified tokens.
//
// Scanning is total: every byte of input ends up in a token, a comment, or
// whitespace. Fragments the lexer cannot classify become best-effort
// identifiers and are reported later by the parser.
package lexer

import (
	"github.com/coregx/coregex"

	"github.com/kolkov/toyc/internal/diag"
	"github.com/kolkov/toyc/internal/token"
)

// numberPattern accepts C and Java numeric constants: hex, octal,
// decimal, floating point with optional exponent, and the usual suffixes.
var numberPattern = mustCompile(`^(?:` +
	`0[xX][0-9a-fA-F]+(?:[uU](?:ll|LL|l|L)?|(?:ll|LL|l|L)[uU]?)?` +
	`|0[0-7]*(?:[uU](?:ll|LL|l|L)?|(?:ll|LL|l|L)[uU]?)?` +
	`|[1-9][0-9]*(?:[uU](?:ll|LL|l|L)?|(?:ll|LL|l|L)[uU]?)?` +
	`|(?:[0-9]+\.[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?[fFlL]?` +
	`|[0-9]+[eE][+-]?[0-9]+[fFlL]?` +
	`)$`)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic("lexer: bad pattern: " + err.Error())
	}
	return re
}

// IsNumber reports whether text is a well-formed numeric constant.
func IsNumber(text string) bool {
	return numberPattern.MatchString(text)
}

// Lexer scans one source text.
type Lexer struct {
	src     []byte
	offset  int            // offset of the current byte
	pos     token.Position // position of the current byte
	dialect token.Dialect

	lineStart bool // only whitespace since the last newline
	diags     diag.List
}

// New creates a Lexer for src using the given dialect's keyword table.
func New(src []byte, dialect token.Dialect) *Lexer {
	return &Lexer{
		src:       src,
		pos:       token.Position{Line: 1, Column: 1},
		dialect:   dialect,
		lineStart: true,
	}
}

// Tokenize scans src with the C dialect and returns every token.
func Tokenize(src string) []token.Token {
	return New([]byte(src), token.C).All()
}

// All scans the remaining input and returns its tokens.
func (l *Lexer) All() []token.Token {
	var toks []token.Token
	for {
		tok, ok := l.Scan()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Diagnostics returns problems found while scanning, such as
// unterminated literals.
func (l *Lexer) Diagnostics() []diag.Diagnostic {
	return l.diags.All()
}

// Scan returns the next token. It returns false at end of input.
func (l *Lexer) Scan() (token.Token, bool) {
	if !l.skipSpaceAndComments() {
		return token.Token{}, false
	}

	pos := l.pos
	start := l.offset
	ch := l.cur()
	atLineStart := l.lineStart
	l.lineStart = false

	var kind token.Kind
	switch {
	case ch == '#' && atLineStart:
		for !l.eof() && l.cur() != '\n' {
			l.next()
		}
		kind = token.PREPROCESSOR
	case ch == '"' || ch == '\'':
		l.scanLiteral(pos)
		kind = token.LITERAL
	case isDigit(ch) || (ch == '.' && isDigit(l.peek(1))):
		kind = l.scanNumber()
	case token.IsPunctuator(ch):
		l.next()
		kind = token.PUNCTUATOR
	default:
		if op := token.MatchOperator(string(l.src[start:min(start+3, len(l.src))])); op != "" {
			for range len(op) {
				l.next()
			}
			kind = token.OPERATOR
		} else {
			l.scanWord()
			kind = l.classifyWord(string(l.src[start:l.offset]))
		}
	}

	text := string(l.src[start:l.offset])
	if kind == token.PREPROCESSOR {
		text = trimRight(text)
	}
	return token.Token{Kind: kind, Text: text, Pos: pos}, true
}

// skipSpaceAndComments advances to the next token start. It returns false
// when input is exhausted.
func (l *Lexer) skipSpaceAndComments() bool {
	for !l.eof() {
		switch ch := l.cur(); {
		case ch == '\n':
			l.lineStart = true
			l.next()
		case isSpace(ch):
			l.next()
		case ch == '/' && l.peek(1) == '/':
			for !l.eof() && l.cur() != '\n' {
				l.next()
			}
		case ch == '/' && l.peek(1) == '*':
			l.next()
			l.next()
			for !l.eof() && !(l.cur() == '*' && l.peek(1) == '/') {
				l.next()
			}
			// an unterminated block comment swallows the rest silently
			if !l.eof() {
				l.next()
				l.next()
			}
		default:
			return true
		}
	}
	return false
}

func (l *Lexer) scanLiteral(pos token.Position) {
	quote := l.cur()
	l.next()
	for !l.eof() {
		switch l.cur() {
		case '\\':
			l.next()
			if !l.eof() {
				l.next()
			}
		case quote:
			l.next()
			return
		default:
			l.next()
		}
	}
	what := "string"
	if quote == '\'' {
		what = "character"
	}
	l.diags.Syntaxf(pos, "unterminated %s literal", what)
}

// scanNumber consumes a maximal numeric run and classifies it.
func (l *Lexer) scanNumber() token.Kind {
	start := l.offset
	hex := l.cur() == '0' && (l.peek(1) == 'x' || l.peek(1) == 'X')
	seenDot := false
scan:
	for !l.eof() {
		ch := l.cur()
		switch {
		case isAlnum(ch):
			l.next()
		case ch == '.' && !seenDot && !hex:
			seenDot = true
			l.next()
		case (ch == '+' || ch == '-') && !hex && l.offset > start &&
			(l.src[l.offset-1] == 'e' || l.src[l.offset-1] == 'E'):
			l.next()
		default:
			break scan
		}
	}
	if IsNumber(string(l.src[start:l.offset])) {
		return token.CONSTANT
	}
	return token.IDENTIFIER
}

// scanWord consumes a run of non-delimiter bytes.
func (l *Lexer) scanWord() {
	for !l.eof() && !l.isDelimiter(l.cur()) {
		l.next()
	}
}

func (l *Lexer) isDelimiter(ch byte) bool {
	return isSpace(ch) || ch == '\n' || ch == '"' || ch == '\'' ||
		token.IsPunctuator(ch) || token.IsOperatorChar(ch)
}

func (l *Lexer) classifyWord(word string) token.Kind {
	switch {
	case word == "true" || word == "false":
		return token.LITERAL
	case token.IsKeyword(l.dialect, word):
		return token.KEYWORD
	default:
		return token.IDENTIFIER
	}
}

func (l *Lexer) eof() bool {
	return l.offset >= len(l.src)
}

func (l *Lexer) cur() byte {
	return l.peek(0)
}

// peek returns the byte n positions ahead, or 0 past the end.
func (l *Lexer) peek(n int) byte {
	if l.offset+n < len(l.src) {
		return l.src[l.offset+n]
	}
	return 0
}

func (l *Lexer) next() {
	if l.eof() {
		return
	}
	if l.src[l.offset] == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.offset++
	l.pos.Offset = l.offset
}

func trimRight(s string) string {
	for len(s) > 0 && isSpace(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

// Helper functions

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlnum(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
