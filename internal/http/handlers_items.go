package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wishlog/internal/core"
)

type listResponse struct {
	Items []core.Item    `json:"items"`
	Stats core.ViewStats `json:"stats"`
}

// handleListItems serves the derived view: filtered by search and
// enum params, sorted by the requested field.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, stats := s.store.View(
		q.Get("search"),
		core.Filters{
			Category: q.Get("category"),
			Priority: q.Get("priority"),
			Status:   q.Get("status"),
		},
		core.SortField(q.Get("sort")),
	)
	if items == nil {
		items = []core.Item{}
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, Stats: stats})
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var d core.Draft
	if err := readJSON(w, r, &d); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	it, err := s.store.Create(r.Context(), d)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var d core.Draft
	if err := readJSON(w, r, &d); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	it, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), d)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// handleDeleteItem answers 204 even for unknown ids; delete is a
// no-op there, not a failure.
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
