package ast

import "fmt"

// Position is the source position of a node within the template text.
// Line and Column are 1-based; Offset is the byte offset into the text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns a human-readable "line:column" representation.
func (p Position) String() string {
	if p.Line <= 0 {
		return "<unknown>"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position carries real line information.
func (p Position) IsValid() bool {
	return p.Line > 0
}
