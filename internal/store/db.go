package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sqlx.DB
}

func Open(dsn string) (*DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	// Pragmas for concurrent request handling and enforced FKs
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=30000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("failed to exec %q: %w", p, err)
		}
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// exists reports whether a row with the given id is present. The table
// name is always one of the three fixed entity tables, never input.
func (db *DB) exists(table, id string) (bool, error) {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM "+table+" WHERE id = ?", id); err != nil {
		return false, err
	}
	return count > 0, nil
}
