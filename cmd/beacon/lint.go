package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"showline-hq/beacon/pkg/authoring"
	"showline-hq/beacon/pkg/catalog"
	"showline-hq/beacon/pkg/template"
	"showline-hq/beacon/pkg/template/validator"
)

var lintFlags struct {
	file    string
	dir     string
	format  string
	watch   bool
	catalog bool
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate template files",
	Long: `Validate notification template files before they are saved.

The lint command runs the static template checks:
  - Balanced {{#if}} / {{/if}} blocks
  - No unterminated {{ tags
  - No empty {{#if}} conditions
and reports advisory warnings for unknown filter names and, with
--catalog, fields missing from the variable catalog.

Examples:
  # Lint single file
  beacon lint --file order_confirmation.txt

  # Lint directory
  beacon lint --dir templates/

  # Re-lint automatically while editing
  beacon lint --dir templates/ --watch

  # JSON output for CI/CD
  beacon lint --file order_confirmation.txt --format json`,
	RunE: lintTemplates,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "template file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of template files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
	lintCmd.Flags().BoolVar(&lintFlags.watch, "watch", false, "re-validate whenever a file changes")
	lintCmd.Flags().BoolVar(&lintFlags.catalog, "catalog", false, "warn on fields missing from the variable catalog")
}

// fileResult pairs a validation result with its source file.
type fileResult struct {
	File string `json:"file"`
	validator.Result
}

func lintTemplates(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	if lintFlags.watch {
		return lintWatch()
	}

	files, err := lintTargets()
	if err != nil {
		return err
	}

	results := make([]fileResult, 0, len(files))
	for _, file := range files {
		result, err := lintFile(file)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if lintFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		printResults(results)
	}

	for _, r := range results {
		if !r.Valid {
			return fmt.Errorf("validation failed")
		}
	}
	return nil
}

func lintTargets() ([]string, error) {
	var files []string
	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}
	if lintFlags.dir != "" {
		for _, pattern := range []string{"*.txt", "*.tmpl", "*.html"} {
			matches, err := filepath.Glob(filepath.Join(lintFlags.dir, pattern))
			if err != nil {
				return nil, fmt.Errorf("list template files: %w", err)
			}
			files = append(files, matches...)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no template files found")
	}
	return files, nil
}

func lintFile(path string) (fileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{}, fmt.Errorf("read template %s: %w", path, err)
	}

	v := validator.New(template.FilterNames())
	if lintFlags.catalog {
		v.KnownFields = catalog.Keys()
	}

	return fileResult{File: path, Result: v.Validate(string(data))}, nil
}

func printResults(results []fileResult) {
	totalErrors := 0
	totalWarnings := 0

	for _, result := range results {
		fmt.Printf("Validating %s...\n", result.File)

		if result.Valid && len(result.Warnings) == 0 {
			fmt.Println("✓ Template valid")
		}

		for _, e := range result.Errors {
			fmt.Printf("✗ Error: %s\n", e)
			totalErrors++
		}
		for _, w := range result.Warnings {
			fmt.Printf("⚠  Warning: %s\n", w)
			totalWarnings++
		}

		fmt.Println()
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d error(s), %d warning(s)\n", totalErrors, totalWarnings)
}

// lintWatch re-validates the target on every debounced file change
// until interrupted.
func lintWatch() error {
	path := lintFlags.file
	if path == "" {
		path = lintFlags.dir
	}

	watcher, err := authoring.NewWatcher(authoring.DefaultWatcherConfig(path), nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watcher.Watch(ctx, func(changed string) {
		result, err := lintFile(changed)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		printResults([]fileResult{result})
	})
}
