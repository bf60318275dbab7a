package store

import (
	"database/sql"
	"errors"
	"fmt"

	"spotifydata/internal/domain"
)

func (db *DB) InsertArtist(artist *domain.Artist) error {
	if artist.ID == "" {
		return fmt.Errorf("artist id is required: %w", ErrInvalid)
	}
	if artist.Name == "" {
		return fmt.Errorf("artist name is required: %w", ErrInvalid)
	}

	taken, err := db.exists("artists", artist.ID)
	if err != nil {
		return fmt.Errorf("failed to check artist %q: %w", artist.ID, err)
	}
	if taken {
		return fmt.Errorf("artist %q: %w", artist.ID, ErrConflict)
	}

	query := `INSERT INTO artists (id, name, genres, popularity, followers, uri)
		VALUES (:id, :name, :genres, :popularity, :followers, :uri)`
	if _, err := db.NamedExec(query, artist); err != nil {
		if mapped := mapSQLiteError(err); errors.Is(mapped, ErrConflict) || errors.Is(mapped, ErrInvalid) {
			return fmt.Errorf("artist %q: %w", artist.ID, mapped)
		}
		return fmt.Errorf("failed to insert artist %q: %w", artist.ID, err)
	}
	return nil
}

func (db *DB) GetArtist(id string) (*domain.Artist, error) {
	var artist domain.Artist
	err := db.Get(&artist, `SELECT * FROM artists WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("artist %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (db *DB) ListArtists() ([]domain.Artist, error) {
	artists := []domain.Artist{}
	err := db.Select(&artists, `SELECT * FROM artists ORDER BY rowid`)
	return artists, err
}
