package handlers

import "net/http"

const serviceName = "coach-relay"

type indexResponse struct {
	OK        bool     `json:"ok"`
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
	Tip       string   `json:"tip,omitempty"`
}

// Index lists the available endpoints.
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		OK:      true,
		Service: serviceName,
		Endpoints: []string{
			"GET /",
			"GET /health",
			"POST /coach/chat",
		},
		Tip: "POST /coach/chat?debug=1 to include model metadata and the raw Gemini response",
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
