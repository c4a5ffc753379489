// Package config loads gitkit configuration.
//
// Values come from, in increasing precedence:
//   - built-in defaults
//   - a YAML file (.gitkit.yaml in the repository root, or $GITKIT_CONFIG)
//   - GITKIT_* environment variables
//
// Command-line flags are applied on top by the CLI.
package config
