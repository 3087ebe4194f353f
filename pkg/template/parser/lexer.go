package parser

import (
	"strings"

	"showline-hq/beacon/pkg/template/ast"
)

// TokenType identifies the kind of a lexed template token.
type TokenType int

const (
	// TokenText is a run of raw template text.
	TokenText TokenType = iota
	// TokenVariable is an interpolation token: {{field}} or {{field|filter}}.
	TokenVariable
	// TokenIf opens a conditional block: {{#if expr}}.
	TokenIf
	// TokenElse separates the branches of a conditional: {{#else}}.
	TokenElse
	// TokenEndIf closes a conditional block: {{/if}}.
	TokenEndIf
)

// Token is a single lexed element of the template text.
// Raw is the exact source slice; Content is the trimmed inner payload
// (the expression of a TokenIf, the field/filter of a TokenVariable).
type Token struct {
	Type     TokenType
	Raw      string
	Content  string
	Position ast.Position
}

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Lex splits template text into a flat token stream. It never fails:
// anything that does not form a recognizable token (an unterminated
// "{{", an empty "{{}}", a malformed variable name) stays raw text, so
// a later render reproduces it verbatim.
func Lex(text string) []Token {
	var tokens []Token
	pos := 0

	emitText := func(start, end int) {
		if end > start {
			tokens = append(tokens, Token{
				Type:     TokenText,
				Raw:      text[start:end],
				Position: positionAt(text, start),
			})
		}
	}

	for pos < len(text) {
		open := strings.Index(text[pos:], openDelim)
		if open < 0 {
			emitText(pos, len(text))
			break
		}
		open += pos

		inner := strings.Index(text[open+len(openDelim):], closeDelim)
		if inner < 0 {
			// Unterminated tag: the remainder is literal text.
			emitText(pos, len(text))
			break
		}

		end := open + len(openDelim) + inner + len(closeDelim)
		raw := text[open:end]
		content := strings.TrimSpace(raw[len(openDelim) : len(raw)-len(closeDelim)])

		tok, ok := classify(raw, content, positionAt(text, open))
		if !ok {
			// Not a recognizable tag; fold it into the surrounding text.
			emitText(pos, end)
			pos = end
			continue
		}

		emitText(pos, open)
		tokens = append(tokens, tok)
		pos = end
	}

	return tokens
}

// classify determines the token type of a delimited tag. The boolean is
// false when the tag is not part of the template language at all.
func classify(raw, content string, pos ast.Position) (Token, bool) {
	switch {
	case content == "/if":
		return Token{Type: TokenEndIf, Raw: raw, Position: pos}, true

	case content == "#else":
		return Token{Type: TokenElse, Raw: raw, Position: pos}, true

	case content == "#if" || strings.HasPrefix(content, "#if "), strings.HasPrefix(content, "#if\t"):
		expr := strings.TrimSpace(strings.TrimPrefix(content, "#if"))
		return Token{Type: TokenIf, Raw: raw, Content: expr, Position: pos}, true

	case isVariableContent(content):
		return Token{Type: TokenVariable, Raw: raw, Content: content, Position: pos}, true
	}

	return Token{}, false
}

// isVariableContent reports whether a tag payload looks like a variable
// reference: a dot-path, optionally followed by "|filter".
func isVariableContent(content string) bool {
	if content == "" {
		return false
	}
	path, filter := SplitFilter(content)
	if path == "" || !isFieldPath(path) {
		return false
	}
	if filter == "" && strings.Contains(content, "|") {
		// "{{name|}}" has a dangling pipe; leave it as text.
		return false
	}
	return filter == "" || isIdent(filter)
}

// SplitFilter splits a variable payload into its field path and
// optional filter name.
func SplitFilter(content string) (path, filter string) {
	if i := strings.Index(content, "|"); i >= 0 {
		return strings.TrimSpace(content[:i]), strings.TrimSpace(content[i+1:])
	}
	return strings.TrimSpace(content), ""
}

func isFieldPath(s string) bool {
	for _, r := range s {
		if !isWordRune(r) && r != '.' {
			return false
		}
	}
	return true
}

func isIdent(s string) bool {
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return s != ""
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// positionAt computes the 1-based line and column of a byte offset.
func positionAt(text string, offset int) ast.Position {
	line := 1
	col := 1
	for _, r := range text[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return ast.Position{Line: line, Column: col, Offset: offset}
}
