package dto

import "spotifydata/internal/domain"

// ArtistCreateRequest lists the JSON fields recognized on artist
// creation. Anything else in the body is ignored.
type ArtistCreateRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Genres     string `json:"genres"`
	Popularity int    `json:"popularity"`
	Followers  int    `json:"followers"`
	URI        string `json:"uri"`
}

func (r *ArtistCreateRequest) ToDomain() *domain.Artist {
	return &domain.Artist{
		ID:         r.ID,
		Name:       r.Name,
		Genres:     r.Genres,
		Popularity: r.Popularity,
		Followers:  r.Followers,
		URI:        r.URI,
	}
}
