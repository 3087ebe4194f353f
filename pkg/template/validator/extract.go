package validator

import (
	"sort"

	"showline-hq/beacon/pkg/template/parser"
)

// ExtractVariables returns the de-duplicated, sorted set of field
// names a template references: every interpolation token plus the
// field of every {{#if}} condition. Authoring tools cross-check the
// result against the documented variable catalog.
func ExtractVariables(text string) []string {
	seen := make(map[string]struct{})

	for _, tok := range parser.Lex(text) {
		switch tok.Type {
		case parser.TokenVariable:
			path, _ := parser.SplitFilter(tok.Content)
			if path != "" {
				seen[path] = struct{}{}
			}

		case parser.TokenIf:
			expr := parser.ParseExpr(tok.Content)
			if expr.Field != "" {
				seen[expr.Field] = struct{}{}
			}
		}
	}

	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}
