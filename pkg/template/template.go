// Package template is the convenience entry point for the Beacon
// notification template engine. It wires a default engine and exposes
// the operations the dispatch service and authoring surfaces call:
// Render (selector + orchestrator), Process, Validate and
// ExtractVariables. Callers needing custom filters, logging or metrics
// construct an engine.Engine directly.
package template

import (
	"sort"

	"showline-hq/beacon/pkg/condition"
	"showline-hq/beacon/pkg/template/engine"
	"showline-hq/beacon/pkg/template/validator"
)

// Context is the data bag a template is rendered against. Keys are
// flat or dot-path field names; values are scalars, string lists or
// nested objects. The engine never mutates it.
type Context = map[string]any

var defaultEngine = engine.New()

// Process renders template text against a context: conditional blocks,
// variable interpolation with filters, trailing-whitespace cleanup.
// It never fails; see the engine package for the soft-failure rules.
func Process(text string, ctx Context) string {
	return defaultEngine.Process(text, ctx)
}

// Render selects the template variant for the context (highest
// priority matching active condition with an override, else the base
// template) and processes it end to end.
func Render(baseTemplate string, conditions []condition.Condition, ctx Context) string {
	return defaultEngine.Render(baseTemplate, conditions, ctx)
}

// Validate runs the static template checks, with warnings enabled for
// the built-in filter set.
func Validate(text string) validator.Result {
	return validator.New(FilterNames()).Validate(text)
}

// ExtractVariables lists every field name the template references.
func ExtractVariables(text string) []string {
	return validator.ExtractVariables(text)
}

// FilterNames returns the sorted names of the built-in filters.
func FilterNames() []string {
	filters := engine.DefaultFilters()
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
