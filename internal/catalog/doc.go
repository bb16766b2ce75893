// Package catalog provides SQLite-backed storage for versioned Spaces.
//
// A catalog entry is a named member mapping. Each Put of new content
// under a name appends a version; putting identical content again is a
// no-op that returns the existing version. Only mappings that build into
// a valid Space are stored.
//
// # Storage format
//
// Members are stored as RFC 8785 canonical JSON of the Space's
// canonical description (Space.Describe), together with a SHA-256
// content hash using the "shapespace/space/v1" domain. Two mappings that
// differ only in key order or number representation hash identically.
//
// Entry ids are UUIDv7, so ids sort by creation time. Ordering within a
// name uses the integer version, never the id or wall time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package catalog
