package engine

import "testing"

func TestEvaluateInline_Ordering(t *testing.T) {
	e := New()

	tests := []struct {
		name      string
		condition string
		ctx       map[string]any
		want      bool
	}{
		{"greater than true", "order_total > 500", map[string]any{"order_total": 501}, true},
		{"greater than boundary", "order_total > 500", map[string]any{"order_total": 500}, false},
		{"greater equal boundary", "order_total >= 500", map[string]any{"order_total": 500}, true},
		{"less than", "attempts < 3", map[string]any{"attempts": 2}, true},
		{"less equal", "attempts <= 3", map[string]any{"attempts": 3}, true},
		{"float value from decoded json", "order_total > 500", map[string]any{"order_total": float64(501)}, true},
		{"numeric string is not coerced", "order_total > 500", map[string]any{"order_total": "501"}, false},
		{"missing field", "order_total > 500", map[string]any{}, false},
		{"non-numeric field", "order_total > 500", map[string]any{"order_total": "lots"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.EvaluateInline(tt.condition, tt.ctx); got != tt.want {
				t.Errorf("EvaluateInline(%q) = %v, want %v", tt.condition, got, tt.want)
			}
		})
	}
}

func TestEvaluateInline_Equality(t *testing.T) {
	e := New()

	tests := []struct {
		name      string
		condition string
		ctx       map[string]any
		want      bool
	}{
		{"string equal", "status == 'paid'", map[string]any{"status": "paid"}, true},
		{"string not equal", "status != 'paid'", map[string]any{"status": "pending"}, true},
		{"case sensitive strings", "status == 'paid'", map[string]any{"status": "Paid"}, false},
		{"number equal across int and float", "count == 3", map[string]any{"count": 3}, true},
		{"numeric string equals number", "count == 3", map[string]any{"count": "3"}, true},
		{"quoted number equals numeric field", "count == '3'", map[string]any{"count": 3}, true},
		{"missing field never equal", "status == 'paid'", map[string]any{}, false},
		{"missing field not unequal either", "status != 'paid'", map[string]any{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.EvaluateInline(tt.condition, tt.ctx); got != tt.want {
				t.Errorf("EvaluateInline(%q) = %v, want %v", tt.condition, got, tt.want)
			}
		})
	}
}

func TestEvaluateInline_StringMatching(t *testing.T) {
	e := New()
	services := []string{"grooming", "drone photography"}

	tests := []struct {
		name      string
		condition string
		ctx       map[string]any
		want      bool
	}{
		{"substring contains", "notes contains 'urgent'", map[string]any{"notes": "this is URGENT please"}, true},
		{"contains case insensitive", "services contains 'DRONE PHOTOGRAPHY'", map[string]any{"services": services}, true},
		{"array membership", "services contains 'drone photography'", map[string]any{"services": services}, true},
		{"array membership is whole element", "services contains 'drone'", map[string]any{"services": services}, false},
		{"array miss", "services contains 'boarding'", map[string]any{"services": services}, false},
		{"any slice membership", "codes contains '7'", map[string]any{"codes": []any{7, 8}}, true},
		{"startsWith", "name startsWith 'dr'", map[string]any{"name": "Dr. Smith"}, true},
		{"startsWith miss", "name startsWith 'mr'", map[string]any{"name": "Dr. Smith"}, false},
		{"endsWith", "email endsWith '.ORG'", map[string]any{"email": "jane@example.org"}, true},
		{"non-string field fails closed", "total startsWith '4'", map[string]any{"total": 499}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.EvaluateInline(tt.condition, tt.ctx); got != tt.want {
				t.Errorf("EvaluateInline(%q) = %v, want %v", tt.condition, got, tt.want)
			}
		})
	}
}

func TestEvaluateInline_TruthyCheck(t *testing.T) {
	e := New()

	if !e.EvaluateInline("rush_requested", map[string]any{"rush_requested": true}) {
		t.Error("truthy bool should evaluate true")
	}
	if e.EvaluateInline("rush_requested", map[string]any{}) {
		t.Error("missing field should evaluate false")
	}
	if e.EvaluateInline("", map[string]any{}) {
		t.Error("empty condition should evaluate false")
	}
}
