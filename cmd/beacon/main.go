// Beacon is the authoring toolchain for the Showline notification
// template engine.
//
// It operates on the conditional template language used for outbound
// email and SMS bodies, providing:
//   - Static validation of template files before they are saved
//   - Local rendering against a YAML/JSON context, with structured
//     condition lists for variant selection
//   - Variable extraction cross-checked against the documented catalog
//
// Usage:
//
//	# Validate a template file
//	beacon lint --file order_confirmation.txt
//
//	# Re-validate on every change while editing
//	beacon lint --dir templates/ --watch
//
//	# Render a template with a context
//	beacon render --file order_confirmation.txt --context order.yaml
//
//	# Render with whole-template variant selection
//	beacon render --file base.txt --context order.yaml --conditions rules.yaml
//
//	# List the fields a template references
//	beacon vars --file order_confirmation.txt
package main

func main() {
	Execute()
}
