package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"showline-hq/beacon/pkg/telemetry/logging"
)

var (
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "beacon",
	Short: "Beacon - notification template authoring tools",
	Long: `Beacon is the authoring toolchain for the Showline conditional
notification template language ({{field}}, {{field|filter}} and
{{#if ...}}...{{#else}}...{{/if}} blocks).

It validates templates before they are persisted, renders them locally
against a context file, and lists the variables a template references.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger, err := logging.New(os.Stderr, logging.Config{
			Level:  level,
			Format: logging.Format(logFormat),
		})
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format (text or json)")
}
