// Package fieldpath resolves dot-notation field paths against template
// contexts. Paths like "agent.name" traverse nested maps; struct values
// are handled through a reflection fallback for contexts assembled from
// business objects rather than decoded documents.
package fieldpath

import (
	"reflect"
	"strings"
)

// Resolve looks up a dot-notation path in a context. The second return
// value reports whether the full path resolved; a missing segment yields
// (nil, false), never an error.
func Resolve(ctx map[string]any, path string) (any, bool) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, false
	}

	// Flat keys may themselves contain dots ("delivery.method" stored
	// verbatim), so try the literal key before traversing.
	if v, ok := ctx[path]; ok {
		return v, true
	}

	parts := strings.Split(path, ".")
	var current any = ctx
	for _, part := range parts {
		next, ok := step(current, part)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// step descends one path segment into a map or struct value.
func step(v any, key string) (any, bool) {
	switch m := v.(type) {
	case map[string]any:
		val, ok := m[key]
		return val, ok
	case map[string]string:
		val, ok := m[key]
		return val, ok
	case map[any]any:
		// yaml.v2-style decoding produces interface keys.
		val, ok := m[key]
		return val, ok
	case nil:
		return nil, false
	}
	return stepReflect(v, key)
}

// stepReflect uses reflection to access a field on a struct (or a key on
// an unrecognized map type). Field matching is case-insensitive so that
// exported Go fields resolve from lowercase template paths.
func stepReflect(obj any, key string) (any, bool) {
	v := reflect.ValueOf(obj)

	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		for _, k := range v.MapKeys() {
			if s, ok := k.Interface().(string); ok && s == key {
				return v.MapIndex(k).Interface(), true
			}
		}
		return nil, false

	case reflect.Struct:
		f := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, key)
		})
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}

	return nil, false
}
