// Package storage opens the backend that persists announcements.
//
// Drivers:
//   - "file": a single JSON document replaced atomically on every save
//   - "sqlite": a SQLite database managed by internal/database
package storage
