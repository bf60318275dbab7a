package store

const Schema = `
CREATE TABLE IF NOT EXISTS artists (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	genres TEXT,
	popularity INTEGER,
	followers INTEGER,
	uri TEXT
);

CREATE TABLE IF NOT EXISTS albums (
	id TEXT PRIMARY KEY,
	artist_id TEXT NOT NULL REFERENCES artists(id),
	name TEXT NOT NULL,
	album_type TEXT,
	release_date DATE,
	release_date_precision TEXT,
	total_tracks INTEGER,
	uri TEXT
);

CREATE TABLE IF NOT EXISTS tracks (
	id TEXT PRIMARY KEY,
	album_id TEXT NOT NULL REFERENCES albums(id),
	name TEXT NOT NULL,
	track_number INTEGER,
	duration_ms INTEGER,
	explicit BOOLEAN,
	uri TEXT,
	is_local BOOLEAN
);

CREATE INDEX IF NOT EXISTS idx_albums_artist_id ON albums(artist_id);
CREATE INDEX IF NOT EXISTS idx_tracks_album_id ON tracks(album_id);
`
