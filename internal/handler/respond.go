package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/natanielandrade/backend/internal/repository"
	"github.com/natanielandrade/backend/internal/service"
	"github.com/natanielandrade/backend/internal/validation"
)

// messageResponse is the envelope for plain status responses.
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse carries per-field failures alongside the generic message.
type validationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeInvalidJSON(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, validationResponse{
		Message: "Dados inválidos",
		Errors:  map[string]string{"_": "JSON malformado"},
	})
}

func writeValidationError(w http.ResponseWriter, verr *validation.Error) {
	writeJSON(w, http.StatusBadRequest, validationResponse{
		Message: "Dados inválidos",
		Errors:  verr.Fields,
	})
}

// writeError maps domain errors onto the HTTP surface. Anything unrecognized
// is logged and reported as an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Não encontrado")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Credenciais inválidas")
	case errors.Is(err, service.ErrInvalidVideoURL):
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: "Dados inválidos",
			Errors:  map[string]string{"url": "URL de vídeo do YouTube inválida"},
		})
	case errors.Is(err, service.ErrInvalidStatus):
		writeJSON(w, http.StatusBadRequest, validationResponse{
			Message: "Dados inválidos",
			Errors:  map[string]string{"status": "deve ser um de: pending read replied"},
		})
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}
