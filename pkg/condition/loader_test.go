package condition

import "testing"

func TestLoadBytes(t *testing.T) {
	doc := []byte(`
conditions:
  - id: rush-orders
    template_id: order-confirmation
    condition_type: order_value
    operator: greater_than
    field: order_total
    value: 50000
    priority: 100
    template_override: "Your order qualifies for rush handling."
    is_active: true
  - operator: in
    field: payment_status
    value: [refunded, void]
    priority: 50
    template_override: "Your payment was returned."
    is_active: true
`)

	conditions, err := LoadBytes(doc)
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}

	if len(conditions) != 2 {
		t.Fatalf("got %d conditions, want 2", len(conditions))
	}

	first := conditions[0]
	if first.ID != "rush-orders" {
		t.Errorf("ID = %q, want rush-orders", first.ID)
	}
	if first.Operator != OperatorGreaterThan {
		t.Errorf("Operator = %q, want greater_than", first.Operator)
	}
	if first.Priority != 100 {
		t.Errorf("Priority = %d, want 100", first.Priority)
	}
	if !first.IsActive {
		t.Error("IsActive should be true")
	}

	// Rows without an id get a generated one.
	if conditions[1].ID == "" {
		t.Error("missing id should be filled with a generated UUID")
	}

	list, ok := conditions[1].Value.([]any)
	if !ok || len(list) != 2 {
		t.Errorf("second condition value = %#v, want a two-element list", conditions[1].Value)
	}
}

func TestLoadBytes_BareList(t *testing.T) {
	doc := []byte(`
- operator: equals
  field: payment_status
  value: paid
  priority: 1
  is_active: true
`)

	conditions, err := LoadBytes(doc)
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}
	if len(conditions) != 1 {
		t.Fatalf("got %d conditions, want 1", len(conditions))
	}
	if conditions[0].Operator != OperatorEquals {
		t.Errorf("Operator = %q, want equals", conditions[0].Operator)
	}
}

func TestLoadBytes_Invalid(t *testing.T) {
	if _, err := LoadBytes([]byte("conditions: {not: [valid")); err == nil {
		t.Error("malformed YAML should return an error")
	}
}
