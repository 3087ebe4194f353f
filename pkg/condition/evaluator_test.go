package condition

import "testing"

func TestEvaluate_Equals(t *testing.T) {
	ctx := map[string]any{
		"payment_status": "paid",
		"order_total":    49900,
		"rush":           true,
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{
			name: "string match",
			cond: Condition{Operator: OperatorEquals, Field: "payment_status", Value: "paid"},
			want: true,
		},
		{
			name: "string mismatch",
			cond: Condition{Operator: OperatorEquals, Field: "payment_status", Value: "refunded"},
			want: false,
		},
		{
			name: "numeric match across representations",
			cond: Condition{Operator: OperatorEquals, Field: "order_total", Value: float64(49900)},
			want: true,
		},
		{
			name: "no string to number coercion",
			cond: Condition{Operator: OperatorEquals, Field: "order_total", Value: "49900"},
			want: false,
		},
		{
			name: "boolean match",
			cond: Condition{Operator: OperatorEquals, Field: "rush", Value: true},
			want: true,
		},
		{
			name: "absent field never equals",
			cond: Condition{Operator: OperatorEquals, Field: "missing", Value: "paid"},
			want: false,
		},
		{
			name: "not_equals on mismatch",
			cond: Condition{Operator: OperatorNotEquals, Field: "payment_status", Value: "refunded"},
			want: true,
		},
		{
			name: "not_equals on absent field",
			cond: Condition{Operator: OperatorNotEquals, Field: "missing", Value: "paid"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.cond, ctx); got != tt.want {
				t.Errorf("Evaluate(%+v) = %v, want %v", tt.cond, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Contains(t *testing.T) {
	ctx := map[string]any{
		"services":         []any{"photo", "drone"},
		"service_names":    []string{"photo", "drone"},
		"property_address": "14 Crescent Ave",
		"order_total":      49900,
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{
			name: "array membership",
			cond: Condition{Operator: OperatorContains, Field: "services", Value: "drone"},
			want: true,
		},
		{
			name: "array non-membership",
			cond: Condition{Operator: OperatorContains, Field: "services", Value: "video"},
			want: false,
		},
		{
			name: "string slice membership",
			cond: Condition{Operator: OperatorContains, Field: "service_names", Value: "photo"},
			want: true,
		},
		{
			name: "substring",
			cond: Condition{Operator: OperatorContains, Field: "property_address", Value: "Crescent"},
			want: true,
		},
		{
			name: "substring is case sensitive",
			cond: Condition{Operator: OperatorContains, Field: "property_address", Value: "crescent"},
			want: false,
		},
		{
			name: "number field is never a container",
			cond: Condition{Operator: OperatorContains, Field: "order_total", Value: 4},
			want: false,
		},
		{
			name: "absent field",
			cond: Condition{Operator: OperatorContains, Field: "missing", Value: "x"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.cond, ctx); got != tt.want {
				t.Errorf("Evaluate(%+v) = %v, want %v", tt.cond, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Ordering(t *testing.T) {
	ctx := map[string]any{
		"order_total":   49900,
		"total_as_text": "49900",
		"sqft":          float64(2250),
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{
			name: "greater_than true",
			cond: Condition{Operator: OperatorGreaterThan, Field: "order_total", Value: 40000},
			want: true,
		},
		{
			name: "greater_than false on equal",
			cond: Condition{Operator: OperatorGreaterThan, Field: "order_total", Value: 49900},
			want: false,
		},
		{
			name: "less_than true",
			cond: Condition{Operator: OperatorLessThan, Field: "sqft", Value: 3000},
			want: true,
		},
		{
			name: "numeric string is not a number",
			cond: Condition{Operator: OperatorGreaterThan, Field: "total_as_text", Value: 0},
			want: false,
		},
		{
			name: "absent field is not greater than anything",
			cond: Condition{Operator: OperatorGreaterThan, Field: "missing", Value: 0},
			want: false,
		},
		{
			name: "non numeric expected value",
			cond: Condition{Operator: OperatorLessThan, Field: "order_total", Value: "many"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.cond, ctx); got != tt.want {
				t.Errorf("Evaluate(%+v) = %v, want %v", tt.cond, got, tt.want)
			}
		})
	}
}

func TestEvaluate_InNotIn(t *testing.T) {
	ctx := map[string]any{
		"payment_status": "paid",
		"order_total":    49900,
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{
			name: "in with member",
			cond: Condition{Operator: OperatorIn, Field: "payment_status", Value: []any{"paid", "authorized"}},
			want: true,
		},
		{
			name: "in with non-member",
			cond: Condition{Operator: OperatorIn, Field: "payment_status", Value: []any{"refunded", "void"}},
			want: false,
		},
		{
			name: "in with numeric member across representations",
			cond: Condition{Operator: OperatorIn, Field: "order_total", Value: []any{float64(49900)}},
			want: true,
		},
		{
			name: "in requires a list value",
			cond: Condition{Operator: OperatorIn, Field: "payment_status", Value: "paid"},
			want: false,
		},
		{
			name: "not_in true when absent",
			cond: Condition{Operator: OperatorNotIn, Field: "missing", Value: []any{"paid"}},
			want: true,
		},
		{
			name: "not_in false on a match",
			cond: Condition{Operator: OperatorNotIn, Field: "payment_status", Value: []any{"paid"}},
			want: false,
		},
		{
			name: "not_in true with a non-list value",
			cond: Condition{Operator: OperatorNotIn, Field: "payment_status", Value: "paid"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.cond, ctx); got != tt.want {
				t.Errorf("Evaluate(%+v) = %v, want %v", tt.cond, got, tt.want)
			}
		})
	}
}

func TestEvaluate_UnknownOperatorFailsClosed(t *testing.T) {
	ctx := map[string]any{"payment_status": "paid"}
	cond := Condition{Operator: "matches", Field: "payment_status", Value: "paid"}

	if Evaluate(cond, ctx) {
		t.Error("unknown operator must evaluate to false")
	}
}

func TestOperatorIsValid(t *testing.T) {
	for _, op := range Operators() {
		if !op.IsValid() {
			t.Errorf("Operator %q should be valid", op)
		}
	}
	if Operator("matches").IsValid() {
		t.Error(`Operator "matches" should not be valid`)
	}
}
