package condition

import (
	"reflect"
	"strings"
)

// strictEqual compares two values without type coercion. Numeric
// values are unified across Go representations (an int decoded from
// YAML equals the float64 the same document decodes to in JSON), but
// strings never compare equal to numbers. This is intentionally
// stricter than the loose equality of the inline template grammar.
func strictEqual(actual, expected any) bool {
	if actual == nil && expected == nil {
		return true
	}
	if actual == nil || expected == nil {
		return false
	}

	aNum, aOK := toFloat64(actual)
	bNum, bOK := toFloat64(expected)
	if aOK || bOK {
		return aOK && bOK && aNum == bNum
	}

	return reflect.DeepEqual(actual, expected)
}

// containsValue checks membership: substring containment for string
// fields, element equality for array fields. Anything else is false.
func containsValue(actual, expected any) bool {
	if s, ok := actual.(string); ok {
		sub, ok := expected.(string)
		return ok && strings.Contains(s, sub)
	}

	rv := reflect.ValueOf(actual)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if strictEqual(rv.Index(i).Interface(), expected) {
			return true
		}
	}
	return false
}

// inList checks whether the field value is a member of the condition's
// value list. A non-list value means no membership can ever hold.
func inList(actual, list any) bool {
	rv := reflect.ValueOf(list)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if strictEqual(actual, rv.Index(i).Interface()) {
			return true
		}
	}
	return false
}

// numericOperands converts both sides of an ordering comparison to
// float64. Strings are not coerced: a non-numeric field value is not
// greater or less than anything.
func numericOperands(actual, expected any) (float64, float64, bool) {
	a, ok := toFloat64(actual)
	if !ok {
		return 0, 0, false
	}
	b, ok := toFloat64(expected)
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}

// toFloat64 converts a numeric Go value to float64.
func toFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	}
	return 0, false
}
