package store

import (
	"errors"
	"strings"
)

// Sentinel errors surfaced to the handler layer, which maps them to
// HTTP status codes. Wrapped errors carry entity context.
var (
	// ErrInvalid marks a rejected write: a required field was missing
	// or a referenced parent row does not exist.
	ErrInvalid = errors.New("invalid record")

	// ErrConflict marks an insert whose id is already taken.
	ErrConflict = errors.New("record already exists")

	// ErrNotFound marks a point lookup that matched no row.
	ErrNotFound = errors.New("record not found")
)

// mapSQLiteError classifies constraint failures that slip past the
// explicit pre-insert checks (two racing inserts, for example).
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrConflict
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "NOT NULL constraint failed"):
		return ErrInvalid
	}
	return err
}
