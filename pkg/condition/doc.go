// Package condition evaluates structured template-selection rules.
//
// A Condition is a database-style row selecting an entire alternate
// template body: field, operator, value, priority, override. Evaluate
// applies one condition's predicate to a context with strict equality
// semantics and no string-to-number coercion; Select orders active
// conditions by descending priority (stable, so the input order breaks
// ties) and returns the first matching override, falling back to the
// base template.
//
// These semantics are deliberately stricter than the inline {{#if}}
// expressions inside a template body, which live in the template
// packages and use loose equality.
package condition
