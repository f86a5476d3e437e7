// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration control, and debug introspection for the
// packet-buffer layer. Pools and devices stay free of observability
// concerns; workers sample their stats into this package off the hot path.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Reload observers for config changes
//   - Pool and device stats sampling
//   - Debug hooks and probe registration
package control
