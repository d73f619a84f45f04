package http

import (
	"errors"
	"log/slog"
	"net/http"

	"wishlog/internal/metadata"
)

// handleMetadata proposes autofill values for a product link. The
// client decides what to keep; nothing is stored here.
func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")

	p, err := s.fetcher.Fetch(r.Context(), rawURL)
	if errors.Is(err, metadata.ErrInvalidURL) {
		writeError(w, err)
		return
	}
	if err != nil {
		// enrichment is best-effort; an unreachable page just means
		// nothing to propose
		slog.WarnContext(r.Context(), "Metadata lookup failed", "url", rawURL, "error", err)
		writeJSON(w, http.StatusOK, metadata.Proposal{})
		return
	}
	writeJSON(w, http.StatusOK, p)
}
