// Package sqlite persists the narrative audit trail in a SQLite database.
//
// It uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. Each generated narrative is stored with the seed and vocabulary
// version needed to replay it.
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/
// directory, each a pair of .up.sql and .down.sql files. Applied versions are
// tracked in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.lexonarrative/data/narratives.db
package sqlite
