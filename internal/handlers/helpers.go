package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"coach-relay/internal/models"
	"coach-relay/internal/services"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		configErr     *services.ConfigError
		validationErr *services.ValidationError
		upstreamErr   *services.UpstreamError
	)

	switch {
	case errors.As(err, &configErr):
		writeJSON(w, http.StatusInternalServerError, errorResp("CONFIG_ERROR", configErr.Message, r))
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", validationErr.Message, r))
	case errors.As(err, &upstreamErr):
		log.Printf("[%s] Gemini API error: status=%d", r.Header.Get("X-Request-ID"), upstreamErr.Status)
		writeJSON(w, http.StatusBadGateway, models.UpstreamErrorResponse{
			Error:  errorResp("UPSTREAM_ERROR", "Gemini API error", r).Error,
			Status: upstreamErr.Status,
			Detail: upstreamErr.Body,
		})
	default:
		log.Printf("[%s] unexpected error: %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "An unexpected error occurred", r))
	}
}
