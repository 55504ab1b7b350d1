package parser

import "github.com/kolkov/toyc/internal/token"

// maxLookahead bounds the token window every predicate inspects.
const maxLookahead = 10

// The predicates below decide which production a statement starts. Each
// is a pure function of a lookahead window; the parser tries them in a
// fixed order because several prefixes are ambiguous (for example
// "int f(" is a function while "int f =" is a declaration).

func at(w []token.Token, i int) token.Token {
	if i < len(w) {
		return w[i]
	}
	return token.Token{Kind: token.EOF}
}

// typeSpecLen returns how many tokens of w form a type, or 0.
// A type is: modifiers, then "struct|union|enum Name", one or more
// built-in type words, or a user type name followed by another name;
// then pointer stars and, Java style, "[]" pairs.
func typeSpecLen(w []token.Token, d token.Dialect) int {
	i := 0
	for at(w, i).Kind == token.KEYWORD && token.IsModifier(d, at(w, i).Text) {
		i++
	}
	t := at(w, i)
	switch {
	case t.Kind == token.KEYWORD && (t.Text == "struct" || t.Text == "union" || t.Text == "enum") &&
		at(w, i+1).Kind == token.IDENTIFIER:
		i += 2
	case t.Kind == token.KEYWORD && token.IsTypeName(d, t.Text):
		for at(w, i).Kind == token.KEYWORD && token.IsTypeName(d, at(w, i).Text) {
			i++
		}
	case t.Kind == token.IDENTIFIER && at(w, i+1).Kind == token.IDENTIFIER:
		i++
	case t.Kind == token.IDENTIFIER && at(w, i+1).IsPunct("[") && at(w, i+2).IsPunct("]") &&
		at(w, i+3).Kind == token.IDENTIFIER:
		i++
	default:
		return 0
	}
	for at(w, i).IsOp("*") {
		i++
	}
	for at(w, i).IsPunct("[") && at(w, i+1).IsPunct("]") {
		i += 2
	}
	return i
}

func isPreprocessor(w []token.Token) bool {
	return at(w, 0).Kind == token.PREPROCESSOR
}

func isImport(w []token.Token) bool {
	return at(w, 0).IsKeyword("import")
}

func isClass(w []token.Token, d token.Dialect) bool {
	i := 0
	for at(w, i).Kind == token.KEYWORD && token.IsModifier(d, at(w, i).Text) {
		i++
	}
	return at(w, i).IsKeyword("class")
}

func isStructOrEnum(w []token.Token) bool {
	t := at(w, 0)
	if !t.IsKeyword("struct") && !t.IsKeyword("union") && !t.IsKeyword("enum") {
		return false
	}
	return at(w, 1).IsPunct("{") ||
		(at(w, 1).Kind == token.IDENTIFIER && at(w, 2).IsPunct("{"))
}

func isFunctionDeclaration(w []token.Token, d token.Dialect) bool {
	n := typeSpecLen(w, d)
	return n > 0 && at(w, n).Kind == token.IDENTIFIER && at(w, n+1).IsPunct("(")
}

func isIfKeyword(w []token.Token) bool {
	return at(w, 0).IsKeyword("if")
}

func isSwitchKeyword(w []token.Token) bool {
	return at(w, 0).IsKeyword("switch")
}

func isLoopKeyword(w []token.Token) bool {
	t := at(w, 0)
	return t.IsKeyword("for") || t.IsKeyword("while") || t.IsKeyword("do")
}

func isExitStatement(w []token.Token) bool {
	t := at(w, 0)
	return t.IsKeyword("break") || t.IsKeyword("continue") || t.IsKeyword("return")
}

func isBlockStart(w []token.Token) bool {
	return at(w, 0).IsPunct("{")
}

// isDeclaration matches "<type> <ident>", with or without an initializer.
func isDeclaration(w []token.Token, d token.Dialect) bool {
	n := typeSpecLen(w, d)
	return n > 0 && at(w, n).Kind == token.IDENTIFIER
}

// isMember reports whether t may follow '.' in a member access.
// Java reserves "length" but it still names a field.
func isMember(t token.Token) bool {
	return t.Kind == token.IDENTIFIER || t.IsKeyword("length")
}

// isAssignment matches "x op=", "a.b op=" and "a[...] op=" where op= is
// "=" or a compound assignment operator.
func isAssignment(w []token.Token) bool {
	return assignOp(w) != ""
}

// assignOp returns the assignment operator that follows the target at the
// start of w, or "" when w does not start an assignment.
func assignOp(w []token.Token) string {
	if at(w, 0).Kind != token.IDENTIFIER {
		return ""
	}
	i := 1
	for at(w, i).IsPunct(".") && isMember(at(w, i+1)) {
		i += 2
	}
	for at(w, i).IsPunct("[") {
		depth := 0
		for ; i < len(w); i++ {
			if w[i].IsPunct("[") {
				depth++
			} else if w[i].IsPunct("]") {
				depth--
				if depth == 0 {
					break
				}
			}
		}
		if depth != 0 {
			return ""
		}
		i++
	}
	if t := at(w, i); t.Kind == token.OPERATOR && token.IsAssignOp(t.Text) {
		return t.Text
	}
	return ""
}

func isIncDec(w []token.Token) bool {
	a, b := at(w, 0), at(w, 1)
	incdec := func(t token.Token) bool { return t.IsOp("++") || t.IsOp("--") }
	return (a.Kind == token.IDENTIFIER && incdec(b)) || (incdec(a) && b.Kind == token.IDENTIFIER)
}

// isFunctionCall matches "name(" and dotted "a.b.c(".
func isFunctionCall(w []token.Token) bool {
	if at(w, 0).Kind != token.IDENTIFIER {
		return false
	}
	i := 1
	for at(w, i).IsPunct(".") && isMember(at(w, i+1)) {
		i += 2
	}
	return at(w, i).IsPunct("(")
}

// canStartExpression reports whether t may begin an expression.
func canStartExpression(t token.Token) bool {
	switch t.Kind {
	case token.CONSTANT, token.LITERAL, token.IDENTIFIER:
		return true
	case token.OPERATOR:
		return unaryOps[t.Text]
	case token.PUNCTUATOR:
		return t.Text == "("
	}
	return false
}
