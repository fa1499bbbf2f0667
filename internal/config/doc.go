// Package config loads, normalizes, and validates linetail configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from the path named by the
// LINETAIL_CONFIG environment variable, ~/.config/linetail/config.toml, or
// a project-local linetail.toml. Always obtain settings through this package
// so downstream code receives sanitized values and clear validation errors.
package config
