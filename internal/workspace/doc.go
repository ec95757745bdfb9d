// Package workspace resolves the workspace root and loads the
// conformance.yaml file that lists which rules run with which options.
package workspace
