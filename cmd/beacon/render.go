package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"showline-hq/beacon/pkg/condition"
	"showline-hq/beacon/pkg/template"
)

var renderFlags struct {
	file       string
	context    string
	conditions string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a template against a context file",
	Long: `Render a notification template locally, exactly as the dispatch
service would: optional whole-template variant selection from a
structured condition list, then conditional block expansion, variable
interpolation with filters and trailing-whitespace cleanup.

The context file is YAML (JSON is accepted, as a YAML subset).

Examples:
  # Render with a context
  beacon render --file order_confirmation.txt --context order.yaml

  # Render with variant selection rules
  beacon render --file base.txt --context order.yaml --conditions rules.yaml`,
	RunE: renderTemplate,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFlags.file, "file", "f", "", "template file to render (required)")
	renderCmd.Flags().StringVar(&renderFlags.context, "context", "", "YAML/JSON context file (required)")
	renderCmd.Flags().StringVar(&renderFlags.conditions, "conditions", "", "YAML structured condition list")
	_ = renderCmd.MarkFlagRequired("file")
	_ = renderCmd.MarkFlagRequired("context")
}

func renderTemplate(cmd *cobra.Command, args []string) error {
	text, err := os.ReadFile(renderFlags.file)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	ctx, err := loadContext(renderFlags.context)
	if err != nil {
		return err
	}

	var conditions []condition.Condition
	if renderFlags.conditions != "" {
		conditions, err = condition.LoadFile(renderFlags.conditions)
		if err != nil {
			return err
		}
	}

	fmt.Println(template.Render(string(text), conditions, ctx))
	return nil
}

func loadContext(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read context file: %w", err)
	}

	var ctx map[string]any
	if err := yaml.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("parse context file: %w", err)
	}
	return ctx, nil
}
