package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"discbox/logger"
	"discbox/model"

	"github.com/gorilla/mux"
)

// ListDVDsHandler returns every DVD, optionally filtered by the q parameter
// (case-insensitive substring over title, director and genre).
func (h *APIHandler) ListDVDsHandler(w http.ResponseWriter, r *http.Request) {
	dvds, err := h.dvdRepo.ListAll(r.Context())
	if err != nil {
		logger.Error("failed to list dvds", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "failed to load collection")
		return
	}

	query := r.URL.Query().Get("q")
	filtered := make([]*model.DVD, 0, len(dvds))
	for _, dvd := range dvds {
		if matchesQuery(query, dvd.Title, dvd.Director, dvd.Genre) {
			filtered = append(filtered, dvd)
		}
	}

	writeJSON(w, http.StatusOK, filtered)
}

// GetDVDHandler returns a single DVD by id.
func (h *APIHandler) GetDVDHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	dvd, err := h.dvdRepo.GetByID(r.Context(), id)
	if err != nil {
		logger.Error("failed to get dvd", logger.String("id", id), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "failed to load record")
		return
	}
	if dvd == nil {
		writeError(w, http.StatusNotFound, "dvd not found")
		return
	}

	writeJSON(w, http.StatusOK, dvd)
}

// CreateDVDHandler creates a new DVD. Validation and the duplicate-barcode
// confirmation mirror the CD flow, with director as the primary credit.
func (h *APIHandler) CreateDVDHandler(w http.ResponseWriter, r *http.Request) {
	var dvd model.DVD
	if err := json.NewDecoder(r.Body).Decode(&dvd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dvd.Title = strings.TrimSpace(dvd.Title)
	dvd.Director = strings.TrimSpace(dvd.Director)
	dvd.Barcode = strings.TrimSpace(dvd.Barcode)
	dvd.Notes = strings.TrimSpace(dvd.Notes)

	if dvd.Title == "" || dvd.Director == "" {
		writeError(w, http.StatusBadRequest, "title and director are required")
		return
	}
	if dvd.Year == 0 {
		dvd.Year = time.Now().Year()
	}
	if !validYear(dvd.Year) {
		writeError(w, http.StatusBadRequest, "year out of range")
		return
	}
	dvd.Genre = defaultGenre(dvd.Genre)

	if dvd.Barcode != "" && !confirmRequested(r) {
		duplicate, err := h.dvdRepo.FindByBarcode(r.Context(), dvd.Barcode, "")
		if err != nil {
			logger.Warn("duplicate check failed", logger.ErrorField(err))
		} else if duplicate != nil {
			writeJSON(w, http.StatusConflict, duplicateResponse{
				Error:    "a DVD with this barcode already exists",
				Existing: duplicate,
			})
			return
		}
	}

	id, err := h.dvdRepo.Create(r.Context(), &dvd)
	if err != nil {
		logger.Error("failed to create dvd", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "failed to save record")
		return
	}

	created, err := h.dvdRepo.GetByID(r.Context(), id)
	if err != nil || created == nil {
		dvd.ID = id
		writeJSON(w, http.StatusCreated, &dvd)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// UpdateDVDHandler applies a field-level partial update to an existing DVD.
func (h *APIHandler) UpdateDVDHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	existing, err := h.dvdRepo.GetByID(r.Context(), id)
	if err != nil {
		logger.Error("failed to get dvd", logger.String("id", id), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "failed to load record")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "dvd not found")
		return
	}

	var update model.DVDUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		writeError(w, http.StatusBadRequest, "title cannot be blank")
		return
	}
	if update.Director != nil && strings.TrimSpace(*update.Director) == "" {
		writeError(w, http.StatusBadRequest, "director cannot be blank")
		return
	}
	if update.Year != nil && !validYear(*update.Year) {
		writeError(w, http.StatusBadRequest, "year out of range")
		return
	}
	if update.Genre != nil {
		genre := defaultGenre(*update.Genre)
		update.Genre = &genre
	}

	if update.Barcode != nil && *update.Barcode != "" && !confirmRequested(r) {
		duplicate, err := h.dvdRepo.FindByBarcode(r.Context(), *update.Barcode, id)
		if err != nil {
			logger.Warn("duplicate check failed", logger.ErrorField(err))
		} else if duplicate != nil {
			writeJSON(w, http.StatusConflict, duplicateResponse{
				Error:    "a DVD with this barcode already exists",
				Existing: duplicate,
			})
			return
		}
	}

	if err := h.dvdRepo.Update(r.Context(), id, &update); err != nil {
		logger.Error("failed to update dvd", logger.String("id", id), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "failed to save record")
		return
	}

	updated, err := h.dvdRepo.GetByID(r.Context(), id)
	if err != nil || updated == nil {
		writeJSON(w, http.StatusOK, existing)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteDVDHandler removes a DVD.
func (h *APIHandler) DeleteDVDHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.dvdRepo.Delete(r.Context(), id); err != nil {
		logger.Error("failed to delete dvd", logger.String("id", id), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "failed to delete record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
