package engine

import (
	"showline-hq/beacon/pkg/condition"
)

// Render is the full dispatch-side call: whole-template variant
// selection from the structured condition list, then Process on the
// selected body. Override selections are counted when metrics are
// attached.
func (e *Engine) Render(baseTemplate string, conditions []condition.Condition, ctx map[string]any) string {
	selected, matched := condition.SelectWithMatch(baseTemplate, conditions, ctx)
	if matched {
		e.logger.Debug("selected override template", "base_len", len(baseTemplate))
		e.metrics.RecordOverrideSelection()
	}
	return e.Process(selected, ctx)
}
