package condition

import (
	"showline-hq/beacon/pkg/fieldpath"
)

// Evaluate applies a structured condition's predicate to a context.
// It fails closed: unknown operators, type mismatches and malformed
// values all evaluate to false rather than erroring, except where the
// operator's own semantics say otherwise (not_equals and not_in are
// true when no match can be established).
func Evaluate(cond Condition, ctx map[string]any) bool {
	actual, found := fieldpath.Resolve(ctx, cond.Field)
	if !found {
		actual = nil
	}

	switch cond.Operator {
	case OperatorEquals:
		return strictEqual(actual, cond.Value)

	case OperatorNotEquals:
		return !strictEqual(actual, cond.Value)

	case OperatorContains:
		return containsValue(actual, cond.Value)

	case OperatorGreaterThan:
		a, b, ok := numericOperands(actual, cond.Value)
		return ok && a > b

	case OperatorLessThan:
		a, b, ok := numericOperands(actual, cond.Value)
		return ok && a < b

	case OperatorIn:
		return inList(actual, cond.Value)

	case OperatorNotIn:
		return !inList(actual, cond.Value)
	}

	// Unknown operator: fail closed.
	return false
}
