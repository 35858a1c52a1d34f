// Package filesystem provides filesystem implementations for chimera.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an adapter over any afero backend.
// pkg/testutil carries the in-memory filesystem used by unit tests.
package filesystem
