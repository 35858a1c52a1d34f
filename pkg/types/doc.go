// Package types defines the interfaces and data structures shared across
// chimera: the FS abstraction every filesystem touching component works
// against, and the Shortcut record read from the launcher's shortcut files.
package types
