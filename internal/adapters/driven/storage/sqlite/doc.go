// Package sqlite provides a SQLite-based implementation of the document store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Documents keep their text and tokens; accepted spans live in a separate
// annotations table keyed by (document_id, token_start).
//
// # Data Location
//
// By default, the database is stored at ~/.timexy/data/documents.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
