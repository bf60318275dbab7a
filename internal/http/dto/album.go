package dto

import "spotifydata/internal/domain"

// AlbumCreateRequest lists the JSON fields recognized on album
// creation. The release date arrives as a partial date string and is
// normalized before the record is built.
type AlbumCreateRequest struct {
	ID                   string `json:"id"`
	ArtistID             string `json:"artist_id"`
	Name                 string `json:"name"`
	AlbumType            string `json:"album_type"`
	ReleaseDate          string `json:"release_date"`
	ReleaseDatePrecision string `json:"release_date_precision"`
	TotalTracks          int    `json:"total_tracks"`
	URI                  string `json:"uri"`
}

func (r *AlbumCreateRequest) ToDomain() *domain.Album {
	return &domain.Album{
		ID:                   r.ID,
		ArtistID:             r.ArtistID,
		Name:                 r.Name,
		AlbumType:            r.AlbumType,
		ReleaseDate:          domain.ParseReleaseDate(r.ReleaseDate),
		ReleaseDatePrecision: r.ReleaseDatePrecision,
		TotalTracks:          r.TotalTracks,
		URI:                  r.URI,
	}
}
