package engine

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"showline-hq/beacon/pkg/fieldpath"
)

// renderVariable resolves a dot-path, applies the named filter if one
// is registered, and stringifies the result. An unresolved path or a
// nil value renders as the empty string, never the word "undefined".
func (e *Engine) renderVariable(path, filter string, ctx map[string]any) string {
	value, ok := fieldpath.Resolve(ctx, path)
	if !ok || value == nil {
		return ""
	}

	if filter != "" {
		if f, ok := e.filters[filter]; ok {
			value = f(value)
		}
		// Unknown filter names pass the value through unchanged.
	}

	return Stringify(value)
}

// Truthy reports whether a context value counts as true for a bare
// {{#if field}} check: non-empty strings, non-zero numbers, true
// booleans and non-empty collections.
func Truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	}

	if n, ok := numberValue(v); ok {
		return n != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}

	return true
}

// Stringify converts a context value to its rendered text form. Floats
// use the shortest plain decimal form so "49900" never renders as
// "4.99e+04", and string slices join with commas.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case []string:
		return strings.Join(val, ",")
	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = Stringify(elem)
		}
		return strings.Join(parts, ",")
	}

	return fmt.Sprint(v)
}

// numberValue converts a numeric Go value to float64. Strings never
// convert; string-to-number coercion is the job of looseNumber and is
// reserved for literal comparison in the inline grammar.
func numberValue(v any) (float64, bool) {
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

// looseNumber converts numbers and numeric strings to float64.
func looseNumber(v any) (float64, bool) {
	if n, ok := numberValue(v); ok {
		return n, true
	}
	if s, ok := v.(string); ok {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n, true
		}
	}
	return 0, false
}
