// Package testutil provides utilities for testing chimera components.
//
// Key components:
//   - MemoryFS: in-memory types.FS with symlinks, rename and error injection
//   - disk helpers (CreateFile, AssertSymlink, ...) for tests that exercise
//     the real OS filesystem under t.TempDir()
//
// Content store tests run against both, so behavior verified in memory is
// also verified against the kernel's symlink semantics.
package testutil
