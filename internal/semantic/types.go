package semantic

import (
	"strings"
	"unicode/utf8"
)

// Class groups declared type names that behave alike for nominal checks.
type Class uint8

const (
	ClassUnknown Class = iota // user types, macros, anything unchecked
	ClassInteger
	ClassDecimal
	ClassChar
	ClassString
	ClassBoolean
	ClassVoid
)

func (c Class) String() string {
	switch c {
	case ClassInteger:
		return "integer"
	case ClassDecimal:
		return "decimal"
	case ClassChar:
		return "char"
	case ClassString:
		return "String"
	case ClassBoolean:
		return "boolean"
	case ClassVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Canonical data type names produced by literals and expressions.
const (
	TypeInt     = "int"
	TypeLong    = "long"
	TypeFloat   = "float"
	TypeDouble  = "double"
	TypeChar    = "char"
	TypeString  = "String"
	TypeBoolean = "boolean"
	TypeMacro   = "macro"
)

// ClassOf classifies a declared type such as "unsigned long" or "String".
// Only the last word decides, so modifiers and sign prefixes are ignored.
func ClassOf(typ string) Class {
	if typ == "" {
		return ClassUnknown
	}
	words := strings.Fields(typ)
	switch words[len(words)-1] {
	case "int", "long", "short", "signed", "unsigned":
		return ClassInteger
	case "float", "double":
		return ClassDecimal
	case "char":
		return ClassChar
	case "String":
		return ClassString
	case "boolean":
		return ClassBoolean
	case "void":
		return ClassVoid
	default:
		return ClassUnknown
	}
}

func isNumeric(c Class) bool {
	return c == ClassInteger || c == ClassDecimal || c == ClassChar
}

// Assignable reports whether a value of type src may initialize or be
// assigned to a variable of type dst. Unknown types always pass.
func Assignable(dst, src string) bool {
	d, s := ClassOf(dst), ClassOf(src)
	if d == ClassVoid {
		return false
	}
	if d == ClassUnknown || s == ClassUnknown {
		return true
	}
	switch d {
	case ClassInteger, ClassChar:
		return s == ClassInteger || s == ClassChar
	case ClassDecimal:
		return isNumeric(s)
	default:
		return d == s
	}
}

// Comparable reports whether values of types a and b may be compared.
func Comparable(a, b string) bool {
	ca, cb := ClassOf(a), ClassOf(b)
	if ca == ClassUnknown || cb == ClassUnknown {
		return true
	}
	if isNumeric(ca) && isNumeric(cb) {
		return true
	}
	return ca == cb
}

// BinaryResult infers the data type of "left op right". It returns
// ok=false when op cannot take a String operand.
func BinaryResult(op, left, right string) (typ string, ok bool) {
	cl, cr := ClassOf(left), ClassOf(right)
	if cl == ClassString || cr == ClassString {
		if op == "+" {
			return TypeString, true
		}
		if (op == "==" || op == "!=") && cl == cr {
			return TypeBoolean, true
		}
		return "", false
	}
	switch op {
	case "==", "!=", "<", ">", "<=", ">=", "&&", "||":
		return TypeBoolean, true
	case ",":
		return right, true
	}
	if cl == ClassUnknown || cr == ClassUnknown {
		return "", true
	}
	if cl == ClassDecimal || cr == ClassDecimal {
		return TypeDouble, true
	}
	if cl == ClassBoolean || cr == ClassBoolean {
		return TypeBoolean, true
	}
	return TypeInt, true
}

// ConstantType returns the data type of a numeric constant token.
func ConstantType(text string) string {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "0x") {
		if strings.ContainsRune(lower, 'l') {
			return TypeLong
		}
		return TypeInt
	}
	decimal := strings.ContainsAny(lower, ".e")
	switch {
	case decimal && strings.HasSuffix(lower, "f"):
		return TypeFloat
	case decimal:
		return TypeDouble
	case strings.ContainsRune(lower, 'l'):
		return TypeLong
	default:
		return TypeInt
	}
}

// LiteralType returns the data type of a quoted or boolean literal token.
func LiteralType(text string) string {
	switch {
	case text == "true" || text == "false":
		return TypeBoolean
	case strings.HasPrefix(text, "'"):
		if CharLength(text) != 1 {
			return ""
		}
		return TypeChar
	case strings.HasPrefix(text, `"`):
		return TypeString
	default:
		return ""
	}
}

// CharLength returns the number of characters between the quotes of a
// single-quoted literal, counting an escape sequence as one. It returns -1
// when the literal is not closed.
func CharLength(text string) int {
	if len(text) < 2 || text[0] != '\'' || text[len(text)-1] != '\'' {
		return -1
	}
	body := text[1 : len(text)-1]
	if strings.HasSuffix(body, `\`) && (len(body)-len(strings.TrimRight(body, `\`)))%2 == 1 {
		return -1 // the closing quote is escaped
	}
	n := 0
	for i := 0; i < len(body); n++ {
		if body[i] == '\\' && i+1 < len(body) {
			i += 1 + escapeLen(body[i+1:])
			continue
		}
		_, size := utf8.DecodeRuneInString(body[i:])
		i += size
	}
	return n
}

// escapeLen returns the length of the escape sequence body s, which
// follows a backslash.
func escapeLen(s string) int {
	switch c := s[0]; {
	case c == 'x':
		return 1 + countWhile(s[1:], len(s), isHexDigit)
	case c == 'u':
		return 1 + countWhile(s[1:], 4, isHexDigit)
	case c >= '0' && c <= '7':
		return 1 + countWhile(s[1:], 2, func(b byte) bool { return b >= '0' && b <= '7' })
	default:
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
}

func countWhile(s string, limit int, ok func(byte) bool) int {
	n := 0
	for n < len(s) && n < limit && ok(s[n]) {
		n++
	}
	return n
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
