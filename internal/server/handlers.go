package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/RolfLobo/dembrandt/internal/logging"
	"github.com/RolfLobo/dembrandt/internal/source"
)

type handlers struct {
	src source.Source
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	entries, err := h.src.List(r.Context())
	if err != nil {
		logging.Error(err)
		writeError(w, http.StatusInternalServerError, "listing failed")
		return
	}
	writeJSON(w, http.StatusOK, source.RecordsFromEntries(entries))
}

func (h *handlers) artifact(w http.ResponseWriter, r *http.Request) {
	domain := pathParam(r, "domain")
	filename := pathParam(r, "filename")
	art, err := h.src.Fetch(r.Context(), domain, filename)
	if err != nil {
		switch {
		case errors.Is(err, source.ErrNotFound):
			writeError(w, http.StatusNotFound, "no such result")
		case errors.Is(err, source.ErrBadName):
			writeError(w, http.StatusBadRequest, "bad result path")
		default:
			logging.Error(err)
			writeError(w, http.StatusInternalServerError, "fetch failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, art)
}

// pathParam returns a decoded chi URL parameter.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error(err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
