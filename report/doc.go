// Package report presents classifier results and feature diagnostics. The
// classifier never depends on it; the CLI wires one or more Reporters.
package report
