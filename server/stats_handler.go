package server

import (
	"net/http"
	"sort"
	"time"

	"discbox/logger"
)

// recentItem is one entry in the dashboard's "recently added" list.
type recentItem struct {
	Type      string    `json:"type"` // "CD" or "DVD"
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Credit    string    `json:"credit"`
	Year      int       `json:"year"`
	CoverURL  string    `json:"coverUrl,omitempty"`
	DateAdded time.Time `json:"dateAdded"`
}

type statsResponse struct {
	CDCount    int          `json:"cdCount"`
	DVDCount   int          `json:"dvdCount"`
	TotalItems int          `json:"totalItems"`
	TotalHours int          `json:"totalHours"`
	Recent     []recentItem `json:"recent"`
}

// StatsHandler powers the dashboard: item counts, total runtime in whole
// hours and the five most recently added items across both collections.
func (h *APIHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	cds, err := h.cdRepo.ListAll(r.Context())
	if err != nil {
		logger.Error("failed to list cds", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "failed to load collection")
		return
	}
	dvds, err := h.dvdRepo.ListAll(r.Context())
	if err != nil {
		logger.Error("failed to list dvds", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "failed to load collection")
		return
	}

	totalMinutes := 0
	recent := make([]recentItem, 0, len(cds)+len(dvds))

	for _, cd := range cds {
		totalMinutes += cd.DurationMinutes
		recent = append(recent, recentItem{
			Type:      "CD",
			ID:        cd.ID,
			Title:     cd.Title,
			Credit:    cd.Artist,
			Year:      cd.Year,
			CoverURL:  cd.CoverURL,
			DateAdded: cd.DateAdded,
		})
	}
	for _, dvd := range dvds {
		totalMinutes += dvd.RuntimeMinutes
		recent = append(recent, recentItem{
			Type:      "DVD",
			ID:        dvd.ID,
			Title:     dvd.Title,
			Credit:    dvd.Director,
			Year:      dvd.Year,
			CoverURL:  dvd.CoverURL,
			DateAdded: dvd.DateAdded,
		})
	}

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].DateAdded.After(recent[j].DateAdded)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	writeJSON(w, http.StatusOK, statsResponse{
		CDCount:    len(cds),
		DVDCount:   len(dvds),
		TotalItems: len(cds) + len(dvds),
		TotalHours: totalMinutes / 60,
		Recent:     recent,
	})
}
