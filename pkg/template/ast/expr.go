package ast

// Operator represents a comparison operator in an inline condition
// expression. The zero value OperatorNone marks a bare truthy check of
// the field with no comparison at all.
type Operator string

const (
	OperatorNone         Operator = ""
	OperatorEqual        Operator = "=="
	OperatorNotEqual     Operator = "!="
	OperatorGreaterEqual Operator = ">="
	OperatorLessEqual    Operator = "<="
	OperatorGreaterThan  Operator = ">"
	OperatorLessThan     Operator = "<"
	OperatorContains     Operator = "contains"
	OperatorStartsWith   Operator = "startsWith"
	OperatorEndsWith     Operator = "endsWith"
)

// IsNumeric reports whether the operator carries numeric-only
// comparison semantics.
func (o Operator) IsNumeric() bool {
	switch o {
	case OperatorGreaterThan, OperatorLessThan, OperatorGreaterEqual, OperatorLessEqual:
		return true
	}
	return false
}

// Expr is a parsed inline condition expression: "field op literal", or
// just "field" when Op is OperatorNone. Value holds the parsed literal:
// a string (quotes stripped) or a float64 when the token parses as a
// number. Raw preserves the original condition string.
type Expr struct {
	Field string
	Op    Operator
	Value any
	Raw   string
}

// IsTruthyCheck reports whether the expression is a bare field check
// with no operator.
func (e *Expr) IsTruthyCheck() bool {
	return e.Op == OperatorNone
}
