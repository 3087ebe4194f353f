// Package catalog documents the template variables the dispatch
// service populates into render contexts. The catalog is never
// consulted during rendering; it exists for authoring tools to explain
// available fields and to cross-check extracted references.
package catalog

import "sort"

// Variable documents one available template field.
type Variable struct {
	Key         string `yaml:"key" json:"key"`
	Category    string `yaml:"category" json:"category"`
	Description string `yaml:"description" json:"description"`
	Example     string `yaml:"example" json:"example"`
}

// Categories the dispatch service groups context fields into.
const (
	CategoryCompany  = "company"
	CategoryAgent    = "agent"
	CategoryOrder    = "order"
	CategoryProperty = "property"
	CategoryPayment  = "payment"
	CategoryDelivery = "delivery"
	CategoryCustom   = "custom"
)

// builtin is the documented variable set. Contexts may carry arbitrary
// additional custom fields; those simply are not documented here.
var builtin = []Variable{
	{Key: "company_name", Category: CategoryCompany, Description: "Display name of the media company", Example: "Showline Media"},
	{Key: "company_phone", Category: CategoryCompany, Description: "Support phone number", Example: "(555) 010-2200"},
	{Key: "company_email", Category: CategoryCompany, Description: "Support email address", Example: "hello@showline.example"},

	{Key: "agent_name", Category: CategoryAgent, Description: "Full name of the booking agent", Example: "Jane Porter"},
	{Key: "agent_first_name", Category: CategoryAgent, Description: "First name of the booking agent", Example: "Jane"},
	{Key: "agent_email", Category: CategoryAgent, Description: "Email address of the booking agent", Example: "jane@brokerage.example"},
	{Key: "agent.brokerage", Category: CategoryAgent, Description: "Brokerage the agent belongs to", Example: "Harborview Realty"},

	{Key: "order_id", Category: CategoryOrder, Description: "Public order reference", Example: "ORD-20417"},
	{Key: "order_total", Category: CategoryOrder, Description: "Order total in integer cents", Example: "49900"},
	{Key: "order_date", Category: CategoryOrder, Description: "Date the order was placed", Example: "2026-08-14"},
	{Key: "services", Category: CategoryOrder, Description: "List of booked service names", Example: "photo, drone, floorplan"},
	{Key: "appointment_date", Category: CategoryOrder, Description: "Scheduled shoot date", Example: "2026-08-21"},
	{Key: "appointment_time", Category: CategoryOrder, Description: "Scheduled shoot start time", Example: "14:30"},

	{Key: "property_address", Category: CategoryProperty, Description: "Street address of the listing", Example: "14 Crescent Ave"},
	{Key: "property_city", Category: CategoryProperty, Description: "City of the listing", Example: "Fairhaven"},
	{Key: "property_sqft", Category: CategoryProperty, Description: "Listing square footage", Example: "2250"},

	{Key: "payment_status", Category: CategoryPayment, Description: "Payment state of the order", Example: "paid"},
	{Key: "payment_amount", Category: CategoryPayment, Description: "Captured payment amount in integer cents", Example: "49900"},
	{Key: "invoice_url", Category: CategoryPayment, Description: "Link to the hosted invoice", Example: "https://billing.example/inv/9f3"},

	{Key: "delivery_method", Category: CategoryDelivery, Description: "How finished media is delivered", Example: "download"},
	{Key: "delivery_date", Category: CategoryDelivery, Description: "Expected media delivery date", Example: "2026-08-22"},
	{Key: "download_url", Category: CategoryDelivery, Description: "Link to the media download page", Example: "https://media.example/d/8c1"},
}

// Builtin returns the documented variable set, ordered by category then
// key.
func Builtin() []Variable {
	out := make([]Variable, len(builtin))
	copy(out, builtin)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Keys returns the sorted documented field names.
func Keys() []string {
	keys := make([]string, len(builtin))
	for i, v := range builtin {
		keys[i] = v.Key
	}
	sort.Strings(keys)
	return keys
}

// Lookup finds a documented variable by key.
func Lookup(key string) (Variable, bool) {
	for _, v := range builtin {
		if v.Key == key {
			return v, true
		}
	}
	return Variable{}, false
}
