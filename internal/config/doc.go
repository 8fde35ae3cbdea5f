// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with last-non-zero-wins semantics via a small builder;
// the final result is validated before the application starts.
package config
