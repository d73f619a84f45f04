package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	wlcsv "wishlog/internal/csv"
	"wishlog/internal/store"
)

type importResponse struct {
	Imported int `json:"imported"`
}

// handleImport accepts CSV either as a multipart "file" field or as
// the raw request body. The size cap applies before any parsing.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, wlcsv.MaxImportBytes+1)

	content, err := importPayload(r)
	if errors.Is(err, store.ErrFileTooLarge) {
		writeError(w, err)
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid import payload"})
		return
	}

	n, err := s.store.ImportCSV(r.Context(), content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Imported: n})
}

func importPayload(r *http.Request) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			return "", err
		}
		defer f.Close()
		if hdr.Size > wlcsv.MaxImportBytes {
			return "", store.ErrFileTooLarge
		}
		data, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		// MaxBytesReader tripping surfaces here
		return "", store.ErrFileTooLarge
	}
	return string(data), nil
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	filename, content, err := s.store.ExportCSV(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write([]byte(content))
}
