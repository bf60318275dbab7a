package httpapp

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"spotifydata/internal/http/dto"
)

// LoadRequest is a bulk import body. Artists are inserted first, then
// albums, then tracks, so references within one batch resolve.
type LoadRequest struct {
	Artists []dto.ArtistCreateRequest `json:"artists"`
	Albums  []dto.AlbumCreateRequest  `json:"albums"`
	Tracks  []dto.TrackCreateRequest  `json:"tracks"`
}

type LoadResponse struct {
	BatchID      string   `json:"batch_id"`
	ArtistsAdded int      `json:"artists_added"`
	AlbumsAdded  int      `json:"albums_added"`
	TracksAdded  int      `json:"tracks_added"`
	Errors       []string `json:"errors"`
}

// LoadData imports a batch of entities in one request. Each insert is
// independent: failures are collected per item and the rest of the
// batch proceeds.
func (h *Handler) LoadData(w http.ResponseWriter, r *http.Request) {
	var req LoadRequest
	if err := decodeBody(r, &req); err != nil {
		h.Logger.Warn("No input data provided for bulk load", "error", err)
		respondError(w, http.StatusBadRequest, msgNoInput)
		return
	}

	resp := LoadResponse{
		BatchID: uuid.New().String(),
		Errors:  []string{},
	}
	log := h.Logger.WithBatch(resp.BatchID)

	for i := range req.Artists {
		artist := req.Artists[i].ToDomain()
		if err := h.Store.InsertArtist(artist); err != nil {
			log.WithEntity("artist", artist.ID).Error("Error adding artist", "error", err)
			resp.Errors = append(resp.Errors, fmt.Sprintf("artist %s: %v", artist.ID, err))
			continue
		}
		resp.ArtistsAdded++
	}

	for i := range req.Albums {
		album := req.Albums[i].ToDomain()
		if err := h.Store.InsertAlbum(album); err != nil {
			log.WithEntity("album", album.ID).Error("Error adding album", "error", err)
			resp.Errors = append(resp.Errors, fmt.Sprintf("album %s: %v", album.ID, err))
			continue
		}
		resp.AlbumsAdded++
	}

	for i := range req.Tracks {
		track := req.Tracks[i].ToDomain()
		if err := h.Store.InsertTrack(track); err != nil {
			log.WithEntity("track", track.ID).Error("Error adding track", "error", err)
			resp.Errors = append(resp.Errors, fmt.Sprintf("track %s: %v", track.ID, err))
			continue
		}
		resp.TracksAdded++
	}

	log.Info("Bulk load finished",
		"artists", resp.ArtistsAdded,
		"albums", resp.AlbumsAdded,
		"tracks", resp.TracksAdded,
		"errors", len(resp.Errors))
	respondJSON(w, http.StatusOK, resp)
}
