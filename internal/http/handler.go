package httpapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"spotifydata/internal/logger"
	"spotifydata/internal/store"
)

type Handler struct {
	Store  *store.DB
	Logger *logger.Logger
}

func NewHandler(db *store.DB, log *logger.Logger) *Handler {
	return &Handler{
		Store:  db,
		Logger: log.WithComponent("http"),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)

	r.Route("/artists", func(r chi.Router) {
		r.Post("/", h.AddArtist)
		r.Get("/", h.GetArtists)
		r.Get("/{id}", h.GetArtist)
	})

	r.Route("/albums", func(r chi.Router) {
		r.Post("/", h.AddAlbum)
		r.Get("/", h.GetAlbums)
		r.Get("/{id}", h.GetAlbum)
	})

	r.Route("/tracks", func(r chi.Router) {
		r.Post("/", h.AddTrack)
		r.Get("/", h.GetTracks)
		r.Get("/{id}", h.GetTrack)
	})

	r.Post("/load", h.LoadData)
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Welcome to the Spotify Data API!"))
}
