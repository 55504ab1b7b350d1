package token

import "fmt"

// Position is a location in source text. The zero Position means the
// location is unknown.
type Position struct {
	Line   int // 1-indexed
	Column int // 1-indexed byte column
	Offset int // 0-indexed byte offset
}

// String returns "line:column", or "-" for an unknown position.
func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position refers to a real location.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// NoPos is the unknown position.
var NoPos = Position{}
