package store

import (
	"database/sql"
	"errors"
	"fmt"

	"spotifydata/internal/domain"
)

func (db *DB) InsertTrack(track *domain.Track) error {
	if track.ID == "" {
		return fmt.Errorf("track id is required: %w", ErrInvalid)
	}
	if track.Name == "" {
		return fmt.Errorf("track name is required: %w", ErrInvalid)
	}
	if track.AlbumID == "" {
		return fmt.Errorf("track album_id is required: %w", ErrInvalid)
	}

	parentExists, err := db.exists("albums", track.AlbumID)
	if err != nil {
		return fmt.Errorf("failed to check album %q: %w", track.AlbumID, err)
	}
	if !parentExists {
		return fmt.Errorf("album %q does not exist: %w", track.AlbumID, ErrInvalid)
	}

	taken, err := db.exists("tracks", track.ID)
	if err != nil {
		return fmt.Errorf("failed to check track %q: %w", track.ID, err)
	}
	if taken {
		return fmt.Errorf("track %q: %w", track.ID, ErrConflict)
	}

	query := `INSERT INTO tracks (
		id, album_id, name, track_number, duration_ms, explicit, uri, is_local
	) VALUES (
		:id, :album_id, :name, :track_number, :duration_ms, :explicit, :uri, :is_local
	)`
	if _, err := db.NamedExec(query, track); err != nil {
		if mapped := mapSQLiteError(err); errors.Is(mapped, ErrConflict) || errors.Is(mapped, ErrInvalid) {
			return fmt.Errorf("track %q: %w", track.ID, mapped)
		}
		return fmt.Errorf("failed to insert track %q: %w", track.ID, err)
	}
	return nil
}

func (db *DB) GetTrack(id string) (*domain.Track, error) {
	var track domain.Track
	err := db.Get(&track, `SELECT * FROM tracks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("track %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &track, nil
}

func (db *DB) ListTracks() ([]domain.Track, error) {
	tracks := []domain.Track{}
	err := db.Select(&tracks, `SELECT * FROM tracks ORDER BY rowid`)
	return tracks, err
}

// ListTracksByAlbum returns an album's tracks via the foreign key, in
// track number order.
func (db *DB) ListTracksByAlbum(albumID string) ([]domain.Track, error) {
	tracks := []domain.Track{}
	err := db.Select(&tracks, `SELECT * FROM tracks WHERE album_id = ? ORDER BY track_number, rowid`, albumID)
	return tracks, err
}
