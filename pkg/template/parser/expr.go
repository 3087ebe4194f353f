package parser

import (
	"strconv"
	"strings"

	"showline-hq/beacon/pkg/template/ast"
)

// operatorScan is the fixed scan order for locating the operator in a
// condition string. Two-character symbols come before their one
// character prefixes so ">=" is never misread as ">" followed by "=".
// Word operators require surrounding whitespace so a field name like
// "contains_pets" is not split in the middle.
var operatorScan = []struct {
	token  string
	op     ast.Operator
	spaced bool
}{
	{">=", ast.OperatorGreaterEqual, false},
	{"<=", ast.OperatorLessEqual, false},
	{"!=", ast.OperatorNotEqual, false},
	{"==", ast.OperatorEqual, false},
	{">", ast.OperatorGreaterThan, false},
	{"<", ast.OperatorLessThan, false},
	{"contains", ast.OperatorContains, true},
	{"startsWith", ast.OperatorStartsWith, true},
	{"endsWith", ast.OperatorEndsWith, true},
}

// ParseExpr parses an inline condition string. It never fails: a string
// with no recognizable operator is a bare truthy check of the named
// field, matching how authors write "{{#if rush_requested}}".
func ParseExpr(condition string) *ast.Expr {
	raw := condition
	condition = strings.TrimSpace(condition)

	for _, candidate := range operatorScan {
		token := candidate.token
		if candidate.spaced {
			token = " " + token + " "
		}
		idx := strings.Index(condition, token)
		if idx < 0 {
			continue
		}

		field := strings.TrimSpace(condition[:idx])
		literal := strings.TrimSpace(condition[idx+len(token):])
		if field == "" {
			break
		}

		return &ast.Expr{
			Field: field,
			Op:    candidate.op,
			Value: parseLiteral(literal),
			Raw:   raw,
		}
	}

	return &ast.Expr{Field: condition, Op: ast.OperatorNone, Raw: raw}
}

// parseLiteral interprets the right-hand side of a comparison. Quoted
// tokens are string literals with the quotes stripped; unquoted tokens
// are numbers when they parse as one and raw strings otherwise.
func parseLiteral(token string) any {
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return token[1 : len(token)-1]
		}
	}

	if n, err := strconv.ParseFloat(token, 64); err == nil {
		return n
	}

	return token
}
