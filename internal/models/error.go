package models

// API Error response
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

// UpstreamErrorResponse echoes a failed upstream call back to the client.
type UpstreamErrorResponse struct {
	Error  APIError `json:"error"`
	Status int      `json:"status"`
	Detail string   `json:"detail"`
}
