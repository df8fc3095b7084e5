// Package sqlite provides the durable entry store backed by SQLite.
//
// The store is a small key-value table: the engine only persists a
// handful of named string entries (draft snapshot, recent-use lists,
// saved recipients, word-count goal), all serialized as JSON by the
// core. Schema changes run through embedded, versioned migrations.
//
// The driver is modernc.org/sqlite (pure Go, no CGO).
package sqlite
