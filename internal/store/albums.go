package store

import (
	"database/sql"
	"errors"
	"fmt"

	"spotifydata/internal/domain"
)

func (db *DB) InsertAlbum(album *domain.Album) error {
	if album.ID == "" {
		return fmt.Errorf("album id is required: %w", ErrInvalid)
	}
	if album.Name == "" {
		return fmt.Errorf("album name is required: %w", ErrInvalid)
	}
	if album.ArtistID == "" {
		return fmt.Errorf("album artist_id is required: %w", ErrInvalid)
	}

	parentExists, err := db.exists("artists", album.ArtistID)
	if err != nil {
		return fmt.Errorf("failed to check artist %q: %w", album.ArtistID, err)
	}
	if !parentExists {
		return fmt.Errorf("artist %q does not exist: %w", album.ArtistID, ErrInvalid)
	}

	taken, err := db.exists("albums", album.ID)
	if err != nil {
		return fmt.Errorf("failed to check album %q: %w", album.ID, err)
	}
	if taken {
		return fmt.Errorf("album %q: %w", album.ID, ErrConflict)
	}

	query := `INSERT INTO albums (
		id, artist_id, name, album_type, release_date, release_date_precision, total_tracks, uri
	) VALUES (
		:id, :artist_id, :name, :album_type, :release_date, :release_date_precision, :total_tracks, :uri
	)`
	if _, err := db.NamedExec(query, album); err != nil {
		if mapped := mapSQLiteError(err); errors.Is(mapped, ErrConflict) || errors.Is(mapped, ErrInvalid) {
			return fmt.Errorf("album %q: %w", album.ID, mapped)
		}
		return fmt.Errorf("failed to insert album %q: %w", album.ID, err)
	}
	return nil
}

func (db *DB) GetAlbum(id string) (*domain.Album, error) {
	var album domain.Album
	err := db.Get(&album, `SELECT * FROM albums WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("album %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (db *DB) ListAlbums() ([]domain.Album, error) {
	albums := []domain.Album{}
	err := db.Select(&albums, `SELECT * FROM albums ORDER BY rowid`)
	return albums, err
}

// ListAlbumsByArtist returns an artist's albums via the foreign key, in
// insertion order.
func (db *DB) ListAlbumsByArtist(artistID string) ([]domain.Album, error) {
	albums := []domain.Album{}
	err := db.Select(&albums, `SELECT * FROM albums WHERE artist_id = ? ORDER BY rowid`, artistID)
	return albums, err
}
