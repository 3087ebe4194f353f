package ast

// Node is a single element of a parsed template. The three variants are
// Literal (raw text), Variable (an interpolation token) and Conditional
// (an {{#if}} block). A template is an ordered list of nodes; branches
// of a Conditional are themselves node lists, which is what makes
// nesting terminate structurally.
type Node interface {
	Pos() Position
	node()
}

// Template is the root of a parsed template.
type Template struct {
	Nodes  []Node
	Source string // original template text
}

// Literal is a run of raw template text emitted verbatim.
type Literal struct {
	Text     string
	Position Position
}

// Variable is an interpolation token: {{field}} or {{field|filter}}.
// Raw preserves the exact source token so passes that do not resolve
// variables can reproduce the input byte for byte.
type Variable struct {
	Path     string
	Filter   string // empty when no filter is present
	Raw      string
	Position Position
}

// Conditional is an {{#if expr}} … {{#else}} … {{/if}} block.
// Else is nil when the block has no else branch.
type Conditional struct {
	Cond     *Expr
	Then     []Node
	Else     []Node
	Position Position
}

func (l *Literal) Pos() Position     { return l.Position }
func (v *Variable) Pos() Position    { return v.Position }
func (c *Conditional) Pos() Position { return c.Position }

func (*Literal) node()     {}
func (*Variable) node()    {}
func (*Conditional) node() {}
