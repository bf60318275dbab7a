package httpapp

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"spotifydata/internal/http/dto"
	"spotifydata/internal/store"
)

func (h *Handler) AddAlbum(w http.ResponseWriter, r *http.Request) {
	var req dto.AlbumCreateRequest
	if err := decodeBody(r, &req); err != nil {
		h.Logger.Warn("No input data provided for adding album", "error", err)
		respondError(w, http.StatusBadRequest, msgNoInput)
		return
	}

	album := req.ToDomain()
	if req.ReleaseDate != "" && album.ReleaseDate == nil {
		// Unparseable dates are dropped, not rejected; the album is
		// stored without one.
		h.Logger.WithEntity("album", album.ID).Warn("Error parsing release date", "release_date", req.ReleaseDate)
	}

	if err := h.Store.InsertAlbum(album); err != nil {
		h.Logger.WithEntity("album", album.ID).Error("Error adding album", "error", err)
		respondError(w, insertStatus(err), err.Error())
		return
	}

	h.Logger.WithEntity("album", album.ID).Info("Album added successfully", "name", album.Name)
	respondMessage(w, http.StatusCreated, "Album added successfully")
}

func (h *Handler) GetAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := h.Store.ListAlbums()
	if err != nil {
		h.Logger.Error("Error fetching albums", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.Info("Fetched all albums successfully", "count", len(albums))
	respondJSON(w, http.StatusOK, albums)
}

func (h *Handler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	album, err := h.Store.GetAlbum(id)
	if errors.Is(err, store.ErrNotFound) {
		h.Logger.WithEntity("album", id).Warn("Album not found")
		respondError(w, http.StatusNotFound, "Album not found")
		return
	}
	if err != nil {
		h.Logger.WithEntity("album", id).Error("Error fetching album", "error", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Logger.WithEntity("album", id).Info("Fetched album", "name", album.Name)
	respondJSON(w, http.StatusOK, album)
}
