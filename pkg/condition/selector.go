package condition

import "sort"

// Select picks the template body to render: the override of the
// highest-priority active condition whose predicate matches the
// context, or the base template when none do. Conditions of equal
// priority keep their relative order from the input list (stable
// sort), so the first listed one wins the tie.
func Select(baseTemplate string, conditions []Condition, ctx map[string]any) string {
	tmpl, _ := SelectWithMatch(baseTemplate, conditions, ctx)
	return tmpl
}

// SelectWithMatch is Select plus a flag reporting whether an override
// was chosen, for callers that instrument override selection.
func SelectWithMatch(baseTemplate string, conditions []Condition, ctx map[string]any) (string, bool) {
	if len(conditions) == 0 {
		return baseTemplate, false
	}

	active := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		if c.IsActive {
			active = append(active, c)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})

	for _, c := range active {
		if !c.HasOverride() {
			continue
		}
		if Evaluate(c, ctx) {
			return c.TemplateOverride, true
		}
	}

	return baseTemplate, false
}
