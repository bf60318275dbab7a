package httpapp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"spotifydata/internal/store"
)

// msgNoInput is the response text for a missing or empty request body.
const msgNoInput = "No input data provided"

var errEmptyBody = errors.New("empty request body")

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeBody reads a JSON request body into dst. An absent, empty or
// null body yields errEmptyBody so the handler can reject with 400
// before touching the store.
func decodeBody(r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 || string(body) == "null" {
		return errEmptyBody
	}
	return json.Unmarshal(body, dst)
}

// insertStatus maps a store write failure to an HTTP status. Rejected
// writes (bad input, missing parent, duplicate id) are client errors.
func insertStatus(err error) int {
	if errors.Is(err, store.ErrInvalid) || errors.Is(err, store.ErrConflict) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
