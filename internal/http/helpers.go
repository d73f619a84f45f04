package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"wishlog/internal/core"
	"wishlog/internal/metadata"
	"wishlog/internal/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Encode response failed", "error", err)
	}
}

// writeError maps the store's error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "item not found"})
	case errors.Is(err, store.ErrRateLimited):
		w.Header().Set("Retry-After", "2")
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "try again in a moment"})
	case errors.Is(err, store.ErrFileTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large (max 5MB)"})
	case errors.Is(err, store.ErrImportEmpty):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "no importable rows found"})
	case errors.Is(err, core.ErrEmptyName):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "name is required"})
	case errors.Is(err, metadata.ErrInvalidURL):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid url"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v)
}
