// Package telemetry groups Beacon's observability concerns.
//
//   - logging: slog logger construction for the CLI and watch mode
//   - metrics: Prometheus collectors for template rendering
//
// The template engine itself never fails on malformed input, so the
// parse-issue counter and warning log under these packages are the
// primary signal that an authored template is degrading.
package telemetry
