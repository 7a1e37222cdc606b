// Package cache is a SQLite-backed store for batches of enumerated
// multigraphs and problem classes, keyed by the parameters that produced
// them (spec.md §6's "Cache schema"). A cache is optional everywhere it
// is threaded through: a missing or unreadable cache falls back to
// recomputation with a logged warning rather than failing the run.
package cache

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS multigraph_class (
	nodes INTEGER NOT NULL,
	degree_a INTEGER NOT NULL,
	degree_p INTEGER NOT NULL,
	data BLOB NOT NULL,
	PRIMARY KEY (nodes, degree_a, degree_p)
);
CREATE TABLE IF NOT EXISTS problem_class (
	degree_a INTEGER NOT NULL,
	degree_p INTEGER NOT NULL,
	label_count INTEGER NOT NULL,
	data BLOB NOT NULL,
	PRIMARY KEY (degree_a, degree_p, label_count)
);
`

// Open opens (creating if absent) the SQLite cache at path and ensures
// both tables exist.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", enableForeignKeys(path))
	if err != nil {
		return nil, errors.Wrap(err, "cache: open")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cache: init schema")
	}
	return db, nil
}

// OpenReadOnly opens the cache at path with SQLite's immutable flag and
// does not create the tables. sql.Open connects lazily, so a missing or
// unreadable file is reported by the first query, not by OpenReadOnly.
func OpenReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", enableImmutable(path))
	if err != nil {
		return nil, errors.Wrap(err, "cache: open read-only")
	}
	return db, nil
}

// Create initializes an empty on-disk cache at path, for the
// create_cache subcommand (spec.md §6).
func Create(path string) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	return db.Close()
}

func enableForeignKeys(path string) string {
	return "file:" + path + "?_foreign_keys=on"
}

func enableImmutable(path string) string {
	return "file:" + path + "?immutable=true"
}
