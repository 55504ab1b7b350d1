// Package token defines the lexical vocabulary of the toy C-family
// languages: token kinds, the Token value and the per-dialect keyword,
// type and operator tables.
package token

import "fmt"

// Kind classifies a token.
type Kind uint8

const (
	EOF          Kind = iota // end of input, produced only by parser cursors
	KEYWORD                  // reserved word
	IDENTIFIER               // name or unrecognized fragment
	CONSTANT                 // numeric literal
	LITERAL                  // string, char or boolean literal
	OPERATOR                 // arithmetic, relational, logical, bitwise, assignment
	PUNCTUATOR               // ; : , ? [ ] { } ( ) # .
	PREPROCESSOR             // whole directive line
)

var kindNames = [...]string{
	EOF:          "EOF",
	KEYWORD:      "Keyword",
	IDENTIFIER:   "Identifier",
	CONSTANT:     "Constant",
	LITERAL:      "Literal",
	OPERATOR:     "Operator",
	PUNCTUATOR:   "Punctuator",
	PREPROCESSOR: "Preprocessor",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is an immutable classified lexeme.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

// Is reports whether the token has the given kind and text.
func (t Token) Is(kind Kind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// IsPunct reports whether the token is the punctuator text.
func (t Token) IsPunct(text string) bool {
	return t.Is(PUNCTUATOR, text)
}

// IsOp reports whether the token is the operator text.
func (t Token) IsOp(text string) bool {
	return t.Is(OPERATOR, text)
}

// IsKeyword reports whether the token is the keyword text.
func (t Token) IsKeyword(text string) bool {
	return t.Is(KEYWORD, text)
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// Dialect selects the keyword and type vocabulary.
type Dialect uint8

const (
	C    Dialect = iota // C-like: structs, enums, preprocessor
	Java                // Java-like: String, boolean, System.out.println
)

func (d Dialect) String() string {
	switch d {
	case C:
		return "c"
	case Java:
		return "java"
	default:
		return fmt.Sprintf("Dialect(%d)", d)
	}
}

// ParseDialect maps a dialect name ("c" or "java") to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "c", "C", "":
		return C, nil
	case "java", "Java":
		return Java, nil
	}
	return C, fmt.Errorf("unknown dialect %q", name)
}

type set map[string]struct{}

func newSet(words ...string) set {
	s := make(set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s set) has(w string) bool {
	_, ok := s[w]
	return ok
}

var keywords = [...]set{
	C: newSet(
		"auto", "break", "case", "char", "const", "continue", "default", "do",
		"double", "else", "enum", "extern", "float", "for", "goto", "if",
		"int", "long", "register", "return", "short", "signed", "sizeof",
		"static", "struct", "switch", "typedef", "union", "unsigned", "void",
		"volatile", "while", "include", "define",
	),
	Java: newSet(
		"boolean", "break", "case", "char", "class", "default", "do", "double",
		"else", "float", "for", "if", "import", "int", "long", "new", "private",
		"public", "return", "static", "switch", "void", "while", "String",
		"length", "continue",
	),
}

// Base type names usable at the head of a declaration.
var typeNames = [...]set{
	C:    newSet("int", "char", "float", "double", "long", "short", "void", "signed", "unsigned"),
	Java: newSet("int", "char", "float", "double", "long", "boolean", "void", "String"),
}

// Storage class and access modifiers that may precede a type.
var modifiers = [...]set{
	C:    newSet("const", "static", "extern", "register", "volatile", "auto"),
	Java: newSet("public", "private", "static"),
}

// IsKeyword reports whether word is reserved in dialect d.
func IsKeyword(d Dialect, word string) bool {
	return int(d) < len(keywords) && keywords[d].has(word)
}

// IsTypeName reports whether word names a built-in type in dialect d.
func IsTypeName(d Dialect, word string) bool {
	return int(d) < len(typeNames) && typeNames[d].has(word)
}

// IsModifier reports whether word is a declaration modifier in dialect d.
func IsModifier(d Dialect, word string) bool {
	return int(d) < len(modifiers) && modifiers[d].has(word)
}

// StatementKeywords are the keywords at which panic-mode recovery stops.
var StatementKeywords = newSet("if", "for", "while", "class", "switch", "return", "break", "continue")

// IsStatementKeyword reports whether t starts a statement for recovery purposes.
func IsStatementKeyword(t Token) bool {
	return t.Kind == KEYWORD && StatementKeywords.has(t.Text)
}

// Operators ordered longest first for maximal munch.
var (
	operators3 = newSet("<<=", ">>=")
	operators2 = newSet(
		"++", "--", "+=", "-=", "*=", "/=", "%=", ">=", "<=", "==", "!=",
		"||", "&&", "<<", ">>", "&=", "|=", "^=",
	)
)

// MatchOperator returns the longest operator that prefixes src, or "".
func MatchOperator(src string) string {
	if len(src) >= 3 && operators3.has(src[:3]) {
		return src[:3]
	}
	if len(src) >= 2 && operators2.has(src[:2]) {
		return src[:2]
	}
	if len(src) >= 1 && IsOperatorChar(src[0]) {
		return src[:1]
	}
	return ""
}

// IsOperatorChar reports whether ch is a single-character operator.
func IsOperatorChar(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~':
		return true
	}
	return false
}

// IsPunctuator reports whether ch is always a punctuator on its own.
func IsPunctuator(ch byte) bool {
	switch ch {
	case ';', ':', ',', '?', '[', ']', '{', '}', '(', ')', '#', '.':
		return true
	}
	return false
}

// IsAssignOp reports whether op is "=" or a compound assignment.
func IsAssignOp(op string) bool {
	switch op {
	case "=", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=":
		return true
	}
	return false
}

// IsComparisonOp reports whether op is a relational or equality operator.
func IsComparisonOp(op string) bool {
	switch op {
	case "==", "!=", "<", ">", "<=", ">=":
		return true
	}
	return false
}
