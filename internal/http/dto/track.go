package dto

import "spotifydata/internal/domain"

// TrackCreateRequest lists the JSON fields recognized on track
// creation.
type TrackCreateRequest struct {
	ID          string `json:"id"`
	AlbumID     string `json:"album_id"`
	Name        string `json:"name"`
	TrackNumber int    `json:"track_number"`
	DurationMS  int    `json:"duration_ms"`
	Explicit    bool   `json:"explicit"`
	URI         string `json:"uri"`
	IsLocal     bool   `json:"is_local"`
}

func (r *TrackCreateRequest) ToDomain() *domain.Track {
	return &domain.Track{
		ID:          r.ID,
		AlbumID:     r.AlbumID,
		Name:        r.Name,
		TrackNumber: r.TrackNumber,
		DurationMS:  r.DurationMS,
		Explicit:    r.Explicit,
		URI:         r.URI,
		IsLocal:     r.IsLocal,
	}
}
