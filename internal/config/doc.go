// Package config loads and merges shopsync configuration from command-line
// flags, environment variables, an optional JSON file and compiled-in
// defaults, in that order of precedence. The merged [StructuredConfig] is
// then narrowed into role-specific views ([ClientConfig], [Server]) which are
// what the wiring code actually consumes.
package config
