// Package parser turns notification template text into the AST defined
// in the ast package.
//
// Lexing and parsing are both lenient by design: a notification render
// must never fail because an author mistyped a tag. Anything that is
// not a well-formed {{...}} tag stays literal text, stray or unclosed
// block markers degrade to literals, and every such degradation is
// reported as an Issue so callers can warn or count without aborting.
//
// The strict counterpart lives in the validator package, which is what
// authoring surfaces run before saving a template.
package parser
