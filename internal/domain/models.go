package domain

// Artist is a performer record. IDs are supplied by the caller and
// immutable once stored.
type Artist struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Genres     string `json:"genres" db:"genres"`
	Popularity int    `json:"popularity" db:"popularity"`
	Followers  int    `json:"followers" db:"followers"`
	URI        string `json:"uri" db:"uri"`
}

// Album belongs to exactly one artist. ReleaseDate is nil when the
// caller omitted it or supplied something unparseable.
type Album struct {
	ID                   string `json:"id" db:"id"`
	ArtistID             string `json:"artist_id" db:"artist_id"`
	Name                 string `json:"name" db:"name"`
	AlbumType            string `json:"album_type" db:"album_type"`
	ReleaseDate          *Date  `json:"release_date" db:"release_date"`
	ReleaseDatePrecision string `json:"release_date_precision" db:"release_date_precision"`
	TotalTracks          int    `json:"total_tracks" db:"total_tracks"`
	URI                  string `json:"uri" db:"uri"`
}

// Track belongs to exactly one album.
type Track struct {
	ID          string `json:"id" db:"id"`
	AlbumID     string `json:"album_id" db:"album_id"`
	Name        string `json:"name" db:"name"`
	TrackNumber int    `json:"track_number" db:"track_number"`
	DurationMS  int    `json:"duration_ms" db:"duration_ms"`
	Explicit    bool   `json:"explicit" db:"explicit"`
	URI         string `json:"uri" db:"uri"`
	IsLocal     bool   `json:"is_local" db:"is_local"`
}
