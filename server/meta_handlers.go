package server

import (
	"net/http"

	"discbox/model"
)

// GenresHandler returns the fixed genre vocabulary for a media kind so the
// client can render its picker from the server.
func (h *APIHandler) GenresHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("kind") {
	case "cd":
		writeJSON(w, http.StatusOK, map[string][]string{"genres": model.CDGenres})
	case "dvd":
		writeJSON(w, http.StatusOK, map[string][]string{"genres": model.DVDGenres})
	default:
		writeError(w, http.StatusBadRequest, "kind must be cd or dvd")
	}
}

// RatingsHandler returns the BBFC classification vocabulary.
func (h *APIHandler) RatingsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"ratings": model.DVDRatings})
}
