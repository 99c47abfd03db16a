package services

import "fmt"

type ConfigError struct{ Message string }

func (e *ConfigError) Error() string { return e.Message }

type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// UpstreamError is a non-2xx answer from the model API. Body is the raw
// response text, passed through untouched.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Gemini API error: status=%d", e.Status)
}

var (
	errMissingCredential  = &ConfigError{Message: "Missing GEMINI_API_KEY"}
	errInvalidUserMessage = &ValidationError{Message: "Missing or invalid userMessage"}
	errInvalidContextPack = &ValidationError{Message: "Missing or invalid contextPack"}
)
