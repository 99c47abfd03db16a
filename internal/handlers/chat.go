package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"coach-relay/internal/models"
	"coach-relay/internal/services"
)

type ChatHandler struct {
	coach        *services.CoachService
	maxBodyBytes int64
}

func NewChatHandler(coach *services.CoachService, maxBodyBytes int64) *ChatHandler {
	return &ChatHandler{
		coach:        coach,
		maxBodyBytes: maxBodyBytes,
	}
}

// Chat handles POST /coach/chat. ?debug=1 adds upstream metadata.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	// Credential is checked before the body is looked at
	if err := h.coach.CheckConfigured(); err != nil {
		handleServiceError(w, r, err)
		return
	}

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var req models.RawChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	debug := r.URL.Query().Get("debug") == "1"

	reply, err := h.coach.Chat(r.Context(), req, debug)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}
