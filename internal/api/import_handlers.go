package api

import (
	"io"
	"net/http"

	"github.com/vytor/leitnerflash/internal/errors"
)

// handleImport accepts a TOML deck body and queues it for import.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("deck too large or unreadable"))
		return
	}

	d, err := s.ImportService.QueueImport(r.Context(), profileFromContext(r.Context()).ID, data)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusAccepted, map[string]any{
		"deck":   d.Name,
		"cards":  len(d.Cards),
		"status": "queued",
	})
}
