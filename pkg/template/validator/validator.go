// Package validator performs static checks on template text before an
// authoring surface persists it. Validation is the one place problems
// surface as data: Validate always returns a complete Result and never
// panics, and rendering never depends on a template having been
// validated first.
package validator

import (
	"fmt"
	"strings"
)

// Result is the outcome of validating a template. Errors make the
// template invalid; Warnings are advisory (unknown filter names,
// fields missing from the variable catalog) and never affect Valid.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// Validator checks template text. The zero value is usable; Filters
// and KnownFields enable the advisory warning checks when set.
type Validator struct {
	// Filters is the set of recognized filter names. When non-nil,
	// unknown filters in {{field|filter}} tokens produce warnings.
	Filters []string

	// KnownFields is the documented variable catalog. When non-nil,
	// referenced fields outside the catalog produce warnings.
	KnownFields []string
}

// New creates a Validator with the given recognized filter names.
func New(filters []string) *Validator {
	return &Validator{Filters: filters}
}

// Validate runs every static check on the template text.
func (v *Validator) Validate(text string) Result {
	result := Result{Errors: []string{}}

	result.Errors = append(result.Errors, checkBalancedConditionals(text)...)
	result.Errors = append(result.Errors, checkUnterminatedTags(text)...)
	result.Errors = append(result.Errors, checkEmptyConditions(text)...)
	result.Warnings = v.collectWarnings(text)

	result.Valid = len(result.Errors) == 0
	return result
}

// Validate runs the static checks with no advisory warnings
// configured.
func Validate(text string) Result {
	return (&Validator{}).Validate(text)
}

// checkBalancedConditionals verifies every {{#if}} has a {{/if}}.
func checkBalancedConditionals(text string) []string {
	opens := strings.Count(text, "{{#if")
	closes := strings.Count(text, "{{/if}}")
	if opens == closes {
		return nil
	}
	return []string{fmt.Sprintf(
		"Unbalanced conditionals: %d {{#if}} blocks but %d {{/if}} blocks",
		opens, closes,
	)}
}

// checkUnterminatedTags reports lines that open a {{ tag without
// closing it.
func checkUnterminatedTags(text string) []string {
	var errs []string
	for i, line := range strings.Split(text, "\n") {
		rest := line
		for {
			open := strings.Index(rest, "{{")
			if open < 0 {
				break
			}
			close := strings.Index(rest[open+2:], "}}")
			if close < 0 {
				errs = append(errs, fmt.Sprintf(
					"Unterminated '{{' tag on line %d", i+1,
				))
				break
			}
			rest = rest[open+2+close+2:]
		}
	}
	return errs
}

// checkEmptyConditions reports {{#if}} blocks whose condition is empty
// or whitespace only.
func checkEmptyConditions(text string) []string {
	var errs []string
	rest := text
	offset := 0
	for {
		idx := strings.Index(rest, "{{#if")
		if idx < 0 {
			break
		}
		tail := rest[idx+len("{{#if"):]
		end := strings.Index(tail, "}}")
		if end < 0 {
			break
		}
		if strings.TrimSpace(tail[:end]) == "" {
			line := 1 + strings.Count(text[:offset+idx], "\n")
			errs = append(errs, fmt.Sprintf(
				"Empty condition in {{#if}} block on line %d", line,
			))
		}
		consumed := idx + len("{{#if") + end + 2
		offset += consumed
		rest = rest[consumed:]
	}
	return errs
}
