package parser

import (
	"testing"

	"showline-hq/beacon/pkg/template/ast"
)

func TestParseExpr(t *testing.T) {
	tests := []struct {
		name      string
		condition string
		wantField string
		wantOp    ast.Operator
		wantValue any
	}{
		{
			name:      "truthy check",
			condition: "rush_requested",
			wantField: "rush_requested",
			wantOp:    ast.OperatorNone,
		},
		{
			name:      "greater than number",
			condition: "order_total > 500",
			wantField: "order_total",
			wantOp:    ast.OperatorGreaterThan,
			wantValue: float64(500),
		},
		{
			name:      "greater equal not misread as greater",
			condition: "order_total >= 500",
			wantField: "order_total",
			wantOp:    ast.OperatorGreaterEqual,
			wantValue: float64(500),
		},
		{
			name:      "less equal",
			condition: "attempts <= 3",
			wantField: "attempts",
			wantOp:    ast.OperatorLessEqual,
			wantValue: float64(3),
		},
		{
			name:      "equality with single quotes",
			condition: "status == 'paid'",
			wantField: "status",
			wantOp:    ast.OperatorEqual,
			wantValue: "paid",
		},
		{
			name:      "inequality with double quotes",
			condition: `status != "canceled"`,
			wantField: "status",
			wantOp:    ast.OperatorNotEqual,
			wantValue: "canceled",
		},
		{
			name:      "contains",
			condition: "services contains 'drone'",
			wantField: "services",
			wantOp:    ast.OperatorContains,
			wantValue: "drone",
		},
		{
			name:      "startsWith",
			condition: "name startsWith 'Dr'",
			wantField: "name",
			wantOp:    ast.OperatorStartsWith,
			wantValue: "Dr",
		},
		{
			name:      "endsWith",
			condition: "email endsWith '.org'",
			wantField: "email",
			wantOp:    ast.OperatorEndsWith,
			wantValue: ".org",
		},
		{
			name:      "word operator inside field name is not split",
			condition: "contains_pets",
			wantField: "contains_pets",
			wantOp:    ast.OperatorNone,
		},
		{
			name:      "unquoted string literal",
			condition: "status == paid",
			wantField: "status",
			wantOp:    ast.OperatorEqual,
			wantValue: "paid",
		},
		{
			name:      "surrounding whitespace trimmed",
			condition: "  order_total > 500  ",
			wantField: "order_total",
			wantOp:    ast.OperatorGreaterThan,
			wantValue: float64(500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := ParseExpr(tt.condition)
			if expr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", expr.Field, tt.wantField)
			}
			if expr.Op != tt.wantOp {
				t.Errorf("Op = %q, want %q", expr.Op, tt.wantOp)
			}
			if expr.Value != tt.wantValue {
				t.Errorf("Value = %v (%T), want %v (%T)", expr.Value, expr.Value, tt.wantValue, tt.wantValue)
			}
			if expr.Raw != tt.condition {
				t.Errorf("Raw = %q, want original %q", expr.Raw, tt.condition)
			}
		})
	}
}

func TestParseExpr_EmptyField(t *testing.T) {
	// An operator with nothing on the left degrades to a truthy check of
	// the whole string rather than an empty field.
	expr := ParseExpr("> 500")
	if expr.Op != ast.OperatorNone {
		t.Errorf("Op = %q, want bare truthy check", expr.Op)
	}
	if expr.Field != "> 500" {
		t.Errorf("Field = %q, want the raw condition", expr.Field)
	}
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		token string
		want  any
	}{
		{"'drone'", "drone"},
		{`"drone"`, "drone"},
		{"500", float64(500)},
		{"3.5", 3.5},
		{"-2", float64(-2)},
		{"paid", "paid"},
		{"''", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := parseLiteral(tt.token); got != tt.want {
			t.Errorf("parseLiteral(%q) = %v (%T), want %v (%T)", tt.token, got, got, tt.want, tt.want)
		}
	}
}
