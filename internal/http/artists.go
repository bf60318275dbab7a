package httpapp

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"spotifydata/internal/http/dto"
	"spotifydata/internal/store"
)

func (h *Handler) AddArtist(w http.ResponseWriter, r *http.Request) {
	var req dto.ArtistCreateRequest
	if err := decodeBody(r, &req); err != nil {
		h.Logger.Warn("No input data provided for adding artist", "error", err)
		respondError(w, http.StatusBadRequest, msgNoInput)
		return
	}

	artist := req.ToDomain()
	if err := h.Store.InsertArtist(artist); err != nil {
		h.Logger.WithEntity("artist", artist.ID).Error("Error adding artist", "error", err)
		respondError(w, insertStatus(err), err.Error())
		return
	}

	h.Logger.WithEntity("artist", artist.ID).Info("Artist added successfully", "name", artist.Name)
	respondMessage(w, http.StatusCreated, "Artist added successfully")
}

func (h *Handler) GetArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.Store.ListArtists()
	if err != nil {
		h.Logger.Error("Error fetching artists", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.Info("Fetched all artists successfully", "count", len(artists))
	respondJSON(w, http.StatusOK, artists)
}

func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	artist, err := h.Store.GetArtist(id)
	if errors.Is(err, store.ErrNotFound) {
		h.Logger.WithEntity("artist", id).Warn("Artist not found")
		respondError(w, http.StatusNotFound, "Artist not found")
		return
	}
	if err != nil {
		h.Logger.WithEntity("artist", id).Error("Error fetching artist", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.WithEntity("artist", id).Info("Fetched artist", "name", artist.Name)
	respondJSON(w, http.StatusOK, artist)
}
