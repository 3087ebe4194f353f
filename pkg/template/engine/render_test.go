package engine

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"showline-hq/beacon/pkg/condition"
	"showline-hq/beacon/pkg/telemetry/metrics"
)

func TestRender_SelectsOverride(t *testing.T) {
	e := New()
	conditions := []condition.Condition{
		{
			ID:               "high-value",
			Operator:         condition.OperatorGreaterThan,
			Field:            "order_total",
			Value:            100000,
			Priority:         10,
			TemplateOverride: "Premium order for {{customer_name}}",
			IsActive:         true,
		},
	}

	got := e.Render("Order for {{customer_name}}", conditions,
		map[string]any{"customer_name": "Jane", "order_total": 150000})
	if got != "Premium order for Jane" {
		t.Errorf("Render() = %q, want override", got)
	}

	got = e.Render("Order for {{customer_name}}", conditions,
		map[string]any{"customer_name": "Jane", "order_total": 50000})
	if got != "Order for Jane" {
		t.Errorf("Render() = %q, want base template", got)
	}
}

func TestRender_CountsOverrideSelections(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := New(WithMetrics(metrics.New(reg)))

	conditions := []condition.Condition{
		{
			ID:               "rush",
			Operator:         condition.OperatorEquals,
			Field:            "delivery_method",
			Value:            "rush",
			Priority:         1,
			TemplateOverride: "Rush!",
			IsActive:         true,
		},
	}

	e.Render("base", conditions, map[string]any{"delivery_method": "rush"})
	e.Render("base", conditions, map[string]any{"delivery_method": "mail"})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != "beacon_template_override_selections_total" {
			continue
		}
		if got := fam.GetMetric()[0].GetCounter().GetValue(); got != 1 {
			t.Errorf("override selections = %v, want 1", got)
		}
		return
	}
	t.Error("override selection counter not registered")
}
