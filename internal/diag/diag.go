// Package diag collects analysis diagnostics.
//
// Diagnostics are recorded, never thrown: every stage of the front end
// appends to a List and keeps going.
package diag

import (
	"fmt"
	"strings"

	"github.com/kolkov/toyc/internal/token"
)

// Kind separates grammar failures from meaning failures.
type Kind uint8

const (
	Syntax   Kind = iota // token stream does not match the grammar
	Semantic             // grammar matched, program is meaningless
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "syntax"
	case Semantic:
		return "semantic"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Message string
	Kind    Kind
	Pos     token.Position // zero when unknown
}

// Error returns "line:col: kind error: message".
func (d Diagnostic) Error() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s error: %s", d.Pos, d.Kind, d.Message)
	}
	return fmt.Sprintf("%s error: %s", d.Kind, d.Message)
}

// List is an append-only, insertion-ordered diagnostic sink.
// The zero value is ready to use.
type List struct {
	items []Diagnostic
}

// Add appends a diagnostic.
func (l *List) Add(kind Kind, pos token.Position, msg string) {
	l.items = append(l.items, Diagnostic{Message: msg, Kind: kind, Pos: pos})
}

// Syntaxf appends a formatted Syntax diagnostic.
func (l *List) Syntaxf(pos token.Position, format string, args ...any) {
	l.Add(Syntax, pos, fmt.Sprintf(format, args...))
}

// Semanticf appends a formatted Semantic diagnostic.
func (l *List) Semanticf(pos token.Position, format string, args ...any) {
	l.Add(Semantic, pos, fmt.Sprintf(format, args...))
}

// Append copies every diagnostic of other onto l, preserving order.
func (l *List) Append(other []Diagnostic) {
	l.items = append(l.items, other...)
}

// Len returns the number of recorded diagnostics.
func (l *List) Len() int {
	return len(l.items)
}

// All returns a copy of the diagnostics in insertion order.
func (l *List) All() []Diagnostic {
	out := make([]Diagnostic, len(l.items))
	copy(out, l.items)
	return out
}

// Err returns nil if the list is empty, otherwise an error describing it.
func (l *List) Err() error {
	if len(l.items) == 0 {
		return nil
	}
	return Errors(l.All())
}

// Errors adapts a diagnostic slice to the error interface.
type Errors []Diagnostic

func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Error()
	default:
		var sb strings.Builder
		sb.WriteString(e[0].Error())
		for _, d := range e[1:] {
			sb.WriteByte('\n')
			sb.WriteString(d.Error())
		}
		return sb.String()
	}
}

// Filter returns the diagnostics of one kind, in order.
func Filter(ds []Diagnostic, kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
