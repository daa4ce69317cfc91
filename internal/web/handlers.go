package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cadastroapp/cadastro/internal/logging"
	"github.com/cadastroapp/cadastro/internal/repository"
	"github.com/go-chi/chi/v5"
)

// handleHealth reports server status plus the backend mode, so the
// desktop shell can wait for readiness and clients can tell simulated
// data from the real spreadsheet.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	mode := "production"
	if s.devMode {
		mode = "development"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"sheets_connected": !s.devMode,
		"dev_mode":         s.devMode,
		"mode":             mode,
	})
}

// rowIndexParam parses the {rowIndex} URL parameter.
func rowIndexParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "rowIndex"))
}

// respondRepoError maps a repository failure to an HTTP response. A
// bad row index is the client's fault; sheet-not-found and upstream
// failures alike surface as 500 with a generic message, the detail
// stays in the server log.
func respondRepoError(w http.ResponseWriter, r *http.Request, err error, genericMsg string) {
	if errors.Is(err, repository.ErrRowIndex) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logging.FromContext(r.Context()).Error("repository error",
		"path", r.URL.Path, "method", r.Method, "error", err)
	writeError(w, http.StatusInternalServerError, genericMsg)
}
