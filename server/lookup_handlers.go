package server

import (
	"net/http"

	"discbox/core/lookup"
	"discbox/logger"
)

const minBarcodeLength = 8

// LookupCDHandler resolves an audio disc barcode. The response is always
// 200 with a Result payload; a failed resolution carries found=false and a
// user-facing reason so the client can offer manual entry.
func (h *APIHandler) LookupCDHandler(w http.ResponseWriter, r *http.Request) {
	h.handleLookup(w, r, "cd", func(barcode string) lookup.Result {
		return h.resolver.ResolveCD(r.Context(), barcode)
	})
}

// LookupDVDHandler resolves a video disc barcode.
func (h *APIHandler) LookupDVDHandler(w http.ResponseWriter, r *http.Request) {
	h.handleLookup(w, r, "dvd", func(barcode string) lookup.Result {
		return h.resolver.ResolveDVD(r.Context(), barcode)
	})
}

func (h *APIHandler) handleLookup(w http.ResponseWriter, r *http.Request, kind string, resolve func(string) lookup.Result) {
	barcode := r.URL.Query().Get("barcode")
	if len(barcode) < minBarcodeLength {
		writeError(w, http.StatusBadRequest, "barcode must be at least 8 digits")
		return
	}

	if h.lookupCache != nil {
		cached, err := h.lookupCache.Get(r.Context(), kind, barcode)
		if err != nil {
			logger.Warn("lookup cache read failed", logger.ErrorField(err))
		} else if cached != nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	result := resolve(barcode)

	if result.Found && result.CoverURL != "" && h.coverArchive != nil && h.coverArchive.Enabled() {
		archived, err := h.coverArchive.Archive(r.Context(), kind, barcode, result.CoverURL)
		if err != nil {
			// Keep the upstream URL when mirroring fails.
			logger.Warn("cover archiving failed",
				logger.String("barcode", barcode),
				logger.ErrorField(err))
		} else {
			result.CoverURL = archived
		}
	}

	if result.Found && h.lookupCache != nil {
		if err := h.lookupCache.Set(r.Context(), kind, barcode, &result); err != nil {
			logger.Warn("lookup cache write failed", logger.ErrorField(err))
		}
	}

	writeJSON(w, http.StatusOK, result)
}
