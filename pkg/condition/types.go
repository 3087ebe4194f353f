package condition

// Operator is the closed set of comparison operators a structured
// condition may use. Unknown operator strings fail closed: the
// condition simply never fires.
type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "not_equals"
	OperatorContains    Operator = "contains"
	OperatorGreaterThan Operator = "greater_than"
	OperatorLessThan    Operator = "less_than"
	OperatorIn          Operator = "in"
	OperatorNotIn       Operator = "not_in"
)

// Operators lists every valid operator, in a stable order, for
// validation and authoring surfaces.
func Operators() []Operator {
	return []Operator{
		OperatorEquals,
		OperatorNotEquals,
		OperatorContains,
		OperatorGreaterThan,
		OperatorLessThan,
		OperatorIn,
		OperatorNotIn,
	}
}

// IsValid reports whether the operator belongs to the closed set.
func (o Operator) IsValid() bool {
	switch o {
	case OperatorEquals, OperatorNotEquals, OperatorContains,
		OperatorGreaterThan, OperatorLessThan, OperatorIn, OperatorNotIn:
		return true
	}
	return false
}

// Condition is a rule for selecting an entire alternate template body.
// Conditions are authored in an external template-management surface
// and are read-only at render time; Value may be a scalar or, for the
// in/not_in operators, a list.
type Condition struct {
	ID               string   `yaml:"id" json:"id"`
	TemplateID       string   `yaml:"template_id" json:"template_id"`
	ConditionType    string   `yaml:"condition_type" json:"condition_type"`
	Operator         Operator `yaml:"operator" json:"operator"`
	Field            string   `yaml:"field" json:"field"`
	Value            any      `yaml:"value" json:"value"`
	Priority         int      `yaml:"priority" json:"priority"`
	TemplateOverride string   `yaml:"template_override,omitempty" json:"template_override,omitempty"`
	IsActive         bool     `yaml:"is_active" json:"is_active"`
}

// HasOverride reports whether the condition carries an alternate
// template body to select when it matches.
func (c Condition) HasOverride() bool {
	return c.TemplateOverride != ""
}
