package engine

import (
	"strings"

	"showline-hq/beacon/pkg/fieldpath"
	"showline-hq/beacon/pkg/template/ast"
	"showline-hq/beacon/pkg/template/parser"
)

// EvaluateInline evaluates a single inline condition string ("field op
// literal", or a bare field name for a truthy check) against a context.
// Ambiguous or type-mismatched comparisons evaluate to false.
func (e *Engine) EvaluateInline(condition string, ctx map[string]any) bool {
	return e.evalExpr(parser.ParseExpr(condition), ctx)
}

// evalExpr applies the inline comparison semantics: loose equality for
// == and !=, numeric-only ordering for < <= > >=, and case-insensitive
// string/array matching for contains, startsWith and endsWith.
func (e *Engine) evalExpr(expr *ast.Expr, ctx map[string]any) bool {
	if expr == nil {
		return false
	}

	actual, _ := fieldpath.Resolve(ctx, expr.Field)

	if expr.IsTruthyCheck() {
		return Truthy(actual)
	}

	switch expr.Op {
	case ast.OperatorEqual:
		return looseEqual(actual, expr.Value)

	case ast.OperatorNotEqual:
		return !looseEqual(actual, expr.Value)

	case ast.OperatorGreaterThan, ast.OperatorLessThan,
		ast.OperatorGreaterEqual, ast.OperatorLessEqual:
		return compareNumeric(expr.Op, actual, expr.Value)

	case ast.OperatorContains:
		return containsFold(actual, expr.Value)

	case ast.OperatorStartsWith:
		s, lit, ok := foldOperands(actual, expr.Value)
		return ok && strings.HasPrefix(s, lit)

	case ast.OperatorEndsWith:
		s, lit, ok := foldOperands(actual, expr.Value)
		return ok && strings.HasSuffix(s, lit)
	}

	// Unknown operator: fail closed.
	return false
}

// looseEqual implements the deliberately relaxed equality of the inline
// grammar. Numeric values compare numerically even across string and
// number representations, because authored literals arrive untyped;
// everything else compares by exact string form. This is distinct from
// the strict equality of the structured condition evaluator.
func looseEqual(actual, literal any) bool {
	if actual == nil {
		return false
	}

	aNum, aOK := looseNumber(actual)
	bNum, bOK := looseNumber(literal)
	if aOK && bOK {
		return aNum == bNum
	}

	return Stringify(actual) == Stringify(literal)
}

// compareNumeric orders two values numerically. The resolved field
// value must already be a number; strings are not coerced, so a
// non-numeric field is never greater or less than anything.
func compareNumeric(op ast.Operator, actual, literal any) bool {
	a, ok := numberValue(actual)
	if !ok {
		return false
	}
	b, ok := numberValue(literal)
	if !ok {
		return false
	}

	switch op {
	case ast.OperatorGreaterThan:
		return a > b
	case ast.OperatorLessThan:
		return a < b
	case ast.OperatorGreaterEqual:
		return a >= b
	case ast.OperatorLessEqual:
		return a <= b
	}
	return false
}

// containsFold implements case-insensitive containment: substring match
// for strings, case-insensitive membership for arrays of values.
func containsFold(actual, literal any) bool {
	lit := strings.ToLower(Stringify(literal))

	switch v := actual.(type) {
	case string:
		return strings.Contains(strings.ToLower(v), lit)
	case []string:
		for _, elem := range v {
			if strings.ToLower(elem) == lit {
				return true
			}
		}
		return false
	case []any:
		for _, elem := range v {
			if strings.ToLower(Stringify(elem)) == lit {
				return true
			}
		}
		return false
	}

	return false
}

// foldOperands lowercases both sides of a prefix/suffix comparison.
// Only string field values participate; anything else fails closed.
func foldOperands(actual, literal any) (string, string, bool) {
	s, ok := actual.(string)
	if !ok {
		return "", "", false
	}
	return strings.ToLower(s), strings.ToLower(Stringify(literal)), true
}
