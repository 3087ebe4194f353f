// Package ast defines the Abstract Syntax Tree for the Beacon
// notification template language.
//
// A template is a flat sequence of nodes; conditional blocks nest by
// holding node lists for their branches, so evaluation order of nested
// conditionals is explicit: the outer condition is decided first and
// only the selected branch's children are ever visited.
//
// # Core Types
//
// Template: root node holding the parsed node list and source text
//
// Literal: raw text emitted verbatim
//
// Variable: interpolation token ({{field}} or {{field|filter}})
//
// Conditional: {{#if expr}} block with optional {{#else}} branch
//
// Expr: inline condition expression (field, operator, literal)
//
// Position: source position (line, column, byte offset)
//
// AST nodes are immutable after construction: the parser builds the
// tree once and the engine walks it without modification, which is why
// a parsed template is safe to render concurrently.
package ast
