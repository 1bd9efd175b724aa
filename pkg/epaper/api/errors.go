package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// ErrorResponse is the JSON error body returned by every handler
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors onto HTTP status codes and writes the JSON
// error body. Unknown errors become 500s.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, epaper.ErrEditionNotFound),
		errors.Is(err, epaper.ErrPageNotFound),
		errors.Is(err, epaper.ErrAssetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, epaper.ErrSessionNotFound):
		status = http.StatusUnauthorized
	case errors.Is(err, epaper.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, epaper.ErrInvalidEditionStatus):
		status = http.StatusConflict
	case errors.Is(err, epaper.ErrInvalidBlockKind),
		errors.Is(err, epaper.ErrInvalidLanguage),
		errors.Is(err, epaper.ErrLoginFailed):
		status = http.StatusBadRequest
	case errors.Is(err, epaper.ErrGenerationFailed):
		status = http.StatusBadGateway
	case errors.Is(err, epaper.ErrNoGenerator),
		errors.Is(err, epaper.ErrNoAssetStore):
		status = http.StatusServiceUnavailable
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}

// badRequest writes a 400 with the given message
func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{Error: msg})
}
