package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/localleadbot/leadbot-api/internal/usecase"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type validationErrorResponse struct {
	Error  string                    `json:"error"`
	Errors []usecase.ValidationError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Int("status", status).Msg("encode response failed")
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

func writeValidationErrors(w http.ResponseWriter, errs []usecase.ValidationError) {
	writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:  "validation_failed",
		Errors: errs,
	})
}
