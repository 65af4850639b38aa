package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boddenberg/desking-go/internal/domain"

	"go.uber.org/zap"
)

// ============================================================
// Shared helper functions
// ============================================================

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// handleServiceError maps domain errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var notFound *domain.ErrNotFound
	var templateNotFound *domain.ErrTemplateNotFound
	var validation *domain.ErrValidation
	var unknownJurisdiction *domain.ErrUnknownJurisdiction
	var docGeneration *domain.ErrDocumentGeneration
	var timeout *domain.ErrTimeout

	switch {
	case errors.As(err, &notFound):
		logger.Debug("not found", zap.String("error", err.Error()))
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &templateNotFound):
		logger.Warn("template not found", zap.String("template_id", templateNotFound.TemplateID))
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		logger.Debug("validation error", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &unknownJurisdiction):
		logger.Warn("unknown tax jurisdiction", zap.String("code", unknownJurisdiction.Code))
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &docGeneration):
		logger.Error("document generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
	case errors.As(err, &timeout):
		logger.Error("request timeout", zap.Error(err))
		writeError(w, http.StatusGatewayTimeout, err.Error())
	default:
		logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
