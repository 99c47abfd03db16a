package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/googleapi"

	"coach-relay/internal/models"
)

// GeminiClient calls the generateContent REST endpoint directly so the raw
// response body stays available for error passthrough and debug output.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, baseURL, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Model returns the model name requests are sent to.
func (c *GeminiClient) Model() string {
	return c.model
}

func (c *GeminiClient) endpoint() string {
	u := c.baseURL + "/v1beta/models/" + url.PathEscape(c.model) + ":generateContent"
	q := url.Values{}
	q.Set("key", c.apiKey)
	return u + "?" + q.Encode()
}

// GenerateContent sends one request and returns the decoded response
// envelope. A non-2xx status yields *UpstreamError; there is no retry.
func (c *GeminiClient) GenerateContent(ctx context.Context, payload models.GeminiPayload) (any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Gemini request failed: %w", redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return nil, &UpstreamError{Status: resp.StatusCode, Body: apiErr.Body}
		}
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading Gemini response: %w", err)
	}

	var envelope any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		log.Printf("Gemini returned unparseable body (%d bytes)", len(raw))
		return nil, fmt.Errorf("failed to parse Gemini response: %w", err)
	}

	return envelope, nil
}

// redactKey strips the API key from transport errors, which embed the URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
