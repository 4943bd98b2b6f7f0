package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// registerRoutes wires the API endpoints onto the router.
func registerRoutes(router *mux.Router, h *APIHandler) {
	// Collection endpoints.
	router.HandleFunc("/api/cds", h.ListCDsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/cds", h.CreateCDHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/cds/{id}", h.GetCDHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/cds/{id}", h.UpdateCDHandler).Methods(http.MethodPut)
	router.HandleFunc("/api/cds/{id}", h.DeleteCDHandler).Methods(http.MethodDelete)

	router.HandleFunc("/api/dvds", h.ListDVDsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/dvds", h.CreateDVDHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/dvds/{id}", h.GetDVDHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/dvds/{id}", h.UpdateDVDHandler).Methods(http.MethodPut)
	router.HandleFunc("/api/dvds/{id}", h.DeleteDVDHandler).Methods(http.MethodDelete)

	// Barcode resolution endpoints.
	router.HandleFunc("/api/lookup/cd", h.LookupCDHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/lookup/dvd", h.LookupDVDHandler).Methods(http.MethodGet)

	// Dashboard and form vocabularies.
	router.HandleFunc("/api/stats", h.StatsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/meta/genres", h.GenresHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/meta/ratings", h.RatingsHandler).Methods(http.MethodGet)
}
