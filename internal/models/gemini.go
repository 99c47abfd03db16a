package models

// Wire types for the generateContent REST call.

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

type GenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

// GeminiPayload is the request body sent upstream.
type GeminiPayload struct {
	SystemInstruction GeminiContent    `json:"systemInstruction"`
	Contents          []GeminiContent  `json:"contents"`
	GenerationConfig  GenerationConfig `json:"generationConfig"`
}
