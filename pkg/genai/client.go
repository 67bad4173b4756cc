package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Google generative language REST endpoint root.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultTimeout bounds a single generateContent call. The upstream call is
// attempted exactly once per request, so a hung upstream fails the request
// instead of wedging it.
const DefaultTimeout = 30 * time.Second

// Client talks to the Gemini generateContent REST API.
type Client struct {
	BaseURL    string
	Model      string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient creates a generateContent client for the given model.
func NewClient(model, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		Model:   model,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GenerateContent sends a single-part text prompt and returns the first
// candidate's text. Errors from the transport or a non-2xx status come back
// as *UpstreamError; a syntactically valid but empty reply is ErrNoCandidates.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("genai: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimSuffix(c.BaseURL, "/"),
		c.Model,
		url.QueryEscape(c.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("genai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(detail)}
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidates
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
