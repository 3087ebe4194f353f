package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"showline-hq/beacon/pkg/catalog"
	"showline-hq/beacon/pkg/template"
)

var varsFlags struct {
	file   string
	format string
}

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List the fields a template references",
	Long: `Extract every field name a template references (interpolation
tokens and {{#if}} condition fields) and cross-check them against the
documented variable catalog.

Examples:
  beacon vars --file order_confirmation.txt
  beacon vars --file order_confirmation.txt --format json`,
	RunE: listVars,
}

func init() {
	rootCmd.AddCommand(varsCmd)

	varsCmd.Flags().StringVarP(&varsFlags.file, "file", "f", "", "template file to inspect (required)")
	varsCmd.Flags().StringVar(&varsFlags.format, "format", "text", "output format: text, json")
	_ = varsCmd.MarkFlagRequired("file")
}

// varReport describes one referenced field and its catalog entry, if
// any.
type varReport struct {
	Key         string `json:"key"`
	Documented  bool   `json:"documented"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Example     string `json:"example,omitempty"`
}

func listVars(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(varsFlags.file)
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	fields := template.ExtractVariables(string(data))
	reports := make([]varReport, 0, len(fields))
	for _, field := range fields {
		report := varReport{Key: field}
		if v, ok := catalog.Lookup(field); ok {
			report.Documented = true
			report.Category = v.Category
			report.Description = v.Description
			report.Example = v.Example
		}
		reports = append(reports, report)
	}

	if varsFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	}

	undocumented := 0
	for _, r := range reports {
		if r.Documented {
			fmt.Printf("  %-24s %-10s %s\n", r.Key, r.Category, r.Description)
		} else {
			fmt.Printf("  %-24s %-10s (not in catalog)\n", r.Key, "?")
			undocumented++
		}
	}
	fmt.Printf("\n%d field(s) referenced, %d not in catalog\n", len(reports), undocumented)
	return nil
}
