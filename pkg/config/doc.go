// Package config handles configuration management for chimera.
// Values are layered from the embedded defaults, the user's TOML file,
// CHIMERA_* environment variables and command-line flag overrides.
package config
