package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"discbox/cache"
	"discbox/config"
	"discbox/core/lookup"
	"discbox/logger"
	"discbox/repository"
	"discbox/storage"
)

// APIHandler handles all API requests.
type APIHandler struct {
	cdRepo       repository.CDRepository
	dvdRepo      repository.DVDRepository
	resolver     *lookup.Resolver
	lookupCache  *cache.LookupCache // nil when Redis is unavailable
	coverArchive *storage.CoverArchive
	cfg          *config.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(
	cdRepo repository.CDRepository,
	dvdRepo repository.DVDRepository,
	resolver *lookup.Resolver,
	lookupCache *cache.LookupCache,
	coverArchive *storage.CoverArchive,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		cdRepo:       cdRepo,
		dvdRepo:      dvdRepo,
		resolver:     resolver,
		lookupCache:  lookupCache,
		coverArchive: coverArchive,
		cfg:          cfg,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", logger.ErrorField(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// duplicateResponse is returned with 409 Conflict when a save would create a
// second record with the same barcode and the client has not confirmed.
type duplicateResponse struct {
	Error    string      `json:"error"`
	Existing interface{} `json:"existing"`
}

// confirmRequested reports whether the client explicitly confirmed saving
// despite a duplicate barcode.
func confirmRequested(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

// validYear checks the plausible-year range. Zero means "not specified" and
// is defaulted by the caller.
func validYear(year int) bool {
	return year >= 1900 && year <= time.Now().Year()
}

// defaultGenre substitutes the "Unknown" sentinel for a blank genre.
func defaultGenre(genre string) string {
	if strings.TrimSpace(genre) == "" {
		return "Unknown"
	}
	return strings.TrimSpace(genre)
}

// matchesQuery does the list screens' case-insensitive substring filter.
func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
