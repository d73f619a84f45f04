package http

import (
	"log/slog"
	"net/http"

	"wishlog/internal/storage"
)

// Settings are presentation preferences. They live in the same
// durable storage as the collection but the core never reads them.
type Settings struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
	Currency string `json:"currency"`
}

func defaultSettings() Settings {
	return Settings{Theme: "light", Language: "en", Currency: "INR"}
}

var (
	validThemes     = map[string]bool{"light": true, "dark": true}
	validLanguages  = map[string]bool{"en": true, "te": true}
	validCurrencies = map[string]bool{"INR": true, "USD": true, "EUR": true, "GBP": true}
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out := defaultSettings()

	if v, ok, err := s.storage.Get(ctx, storage.KeyTheme); err == nil && ok && validThemes[v] {
		out.Theme = v
	}
	if v, ok, err := s.storage.Get(ctx, storage.KeyLanguage); err == nil && ok && validLanguages[v] {
		out.Language = v
	}
	if v, ok, err := s.storage.Get(ctx, storage.KeyCurrency); err == nil && ok && validCurrencies[v] {
		out.Currency = v
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var in Settings
	if err := readJSON(w, r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if !validThemes[in.Theme] || !validLanguages[in.Language] || !validCurrencies[in.Currency] {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "unknown setting value"})
		return
	}

	ctx := r.Context()
	for key, value := range map[string]string{
		storage.KeyTheme:    in.Theme,
		storage.KeyLanguage: in.Language,
		storage.KeyCurrency: in.Currency,
	} {
		if err := s.storage.Set(ctx, key, value); err != nil {
			slog.ErrorContext(ctx, "Persist setting failed", "key", key, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not save settings"})
			return
		}
	}
	writeJSON(w, http.StatusOK, in)
}
