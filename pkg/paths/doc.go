// Package paths provides centralized path handling for chimera.
//
// This package implements the XDG Base Directory specification and resolves
// the directories the content store, the shortcut store and the logger use.
//
// # Environment Variables
//
// The package reads CHIMERA_CONFIG_DIR to override the config directory
// (default: $XDG_CONFIG_HOME/chimera). CHIMERA_DATA_DIR and
// CHIMERA_SHORTCUTS_DIR are configuration keys handled by pkg/config, which
// passes the resolved directories back to New.
//
// # Directory Structure
//
//   - Data: $XDG_DATA_HOME/chimera/<content type>/<platform>/... (content, banner, ...)
//   - Shortcuts: $XDG_DATA_HOME/chimera/shortcuts/chimera.<platform>.yaml
//   - Config: $XDG_CONFIG_HOME/chimera/config.toml
//   - State: $XDG_STATE_HOME/chimera/chimera.log
package paths
