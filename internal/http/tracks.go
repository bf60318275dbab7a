package httpapp

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"spotifydata/internal/http/dto"
	"spotifydata/internal/store"
)

func (h *Handler) AddTrack(w http.ResponseWriter, r *http.Request) {
	var req dto.TrackCreateRequest
	if err := decodeBody(r, &req); err != nil {
		h.Logger.Warn("No input data provided for adding track", "error", err)
		respondError(w, http.StatusBadRequest, msgNoInput)
		return
	}

	track := req.ToDomain()
	if err := h.Store.InsertTrack(track); err != nil {
		h.Logger.WithEntity("track", track.ID).Error("Error adding track", "error", err)
		respondError(w, insertStatus(err), err.Error())
		return
	}

	h.Logger.WithEntity("track", track.ID).Info("Track added successfully", "name", track.Name)
	respondMessage(w, http.StatusCreated, "Track added successfully")
}

func (h *Handler) GetTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.Store.ListTracks()
	if err != nil {
		h.Logger.Error("Error fetching tracks", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.Info("Fetched all tracks successfully", "count", len(tracks))
	respondJSON(w, http.StatusOK, tracks)
}

func (h *Handler) GetTrack(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	track, err := h.Store.GetTrack(id)
	if errors.Is(err, store.ErrNotFound) {
		h.Logger.WithEntity("track", id).Warn("Track not found")
		respondError(w, http.StatusNotFound, "Track not found")
		return
	}
	if err != nil {
		h.Logger.WithEntity("track", id).Error("Error fetching track", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.WithEntity("track", id).Info("Fetched track", "name", track.Name)
	respondJSON(w, http.StatusOK, track)
}
