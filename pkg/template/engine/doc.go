// Package engine evaluates parsed notification templates against a
// context: conditional block expansion, variable interpolation with
// value filters, and the end-to-end Process orchestrator.
//
// # Soft failure
//
// A broken template must never fail the notification request that
// renders it. The engine therefore has no error paths: unresolved
// field paths render empty, filters given the wrong shape pass values
// through, unrecognized operators and type-mismatched comparisons
// evaluate to false, and structural problems in the template text are
// reported through the configured logger and Prometheus counter while
// the malformed markers render as literal text.
//
// # Equality semantics
//
// The inline expression grammar uses loose equality (numeric and
// string literals are interchangeable, as authors write them), which
// is intentionally different from the strict equality used by the
// structured condition evaluator in the condition package. The two are
// separate, individually named implementations so the difference stays
// visible.
package engine
