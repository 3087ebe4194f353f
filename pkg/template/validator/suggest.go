package validator

import (
	"fmt"
	"slices"
	"strings"

	"showline-hq/beacon/pkg/template/parser"
)

// collectWarnings produces the advisory findings: filter names the
// engine will silently pass through, and referenced fields absent from
// the documented catalog. Both carry nearest-match suggestions.
func (v *Validator) collectWarnings(text string) []string {
	var warnings []string

	if v.Filters != nil {
		for _, tok := range parser.Lex(text) {
			if tok.Type != parser.TokenVariable {
				continue
			}
			_, filter := parser.SplitFilter(tok.Content)
			if filter == "" || slices.Contains(v.Filters, filter) {
				continue
			}
			msg := fmt.Sprintf("Unknown filter %q will pass the value through unchanged", filter)
			if hint := suggestClosest(filter, v.Filters); hint != "" {
				msg += "; " + hint
			}
			warnings = append(warnings, msg)
		}
	}

	if v.KnownFields != nil {
		for _, field := range ExtractVariables(text) {
			if slices.Contains(v.KnownFields, field) {
				continue
			}
			msg := fmt.Sprintf("Field %q is not in the variable catalog", field)
			if hint := suggestClosest(field, v.KnownFields); hint != "" {
				msg += "; " + hint
			}
			warnings = append(warnings, msg)
		}
	}

	return warnings
}

// suggestClosest finds the nearest known name by Levenshtein distance.
// It stays silent when nothing is close enough to be a plausible typo.
func suggestClosest(unknown string, valid []string) string {
	if len(valid) == 0 {
		return ""
	}

	minDistance := 1000
	var bestMatch string
	for _, candidate := range valid {
		if dist := levenshteinDistance(unknown, candidate); dist < minDistance {
			minDistance = dist
			bestMatch = candidate
		}
	}

	if minDistance < 5 {
		return fmt.Sprintf("did you mean %q?", bestMatch)
	}
	if len(valid) > 5 {
		return fmt.Sprintf("known names include: %s, ...", strings.Join(valid[:5], ", "))
	}
	return fmt.Sprintf("known names: %s", strings.Join(valid, ", "))
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1, len2 := len(s1), len(s2)
	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len1][len2]
}
