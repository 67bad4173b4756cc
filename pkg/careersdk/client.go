package careersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the PathFinder career guidance service.
// It provides the unauthenticated operations and can create authenticated
// Sessions via Login.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Signup creates a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var resp SignupResponse
	if err := c.postJSON(ctx, "/signup", "", req, &resp, http.StatusCreated); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges credentials for an authenticated Session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	var resp LoginResponse
	if err := c.postJSON(ctx, "/login", "", req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &Session{client: c, token: resp.Token}, nil
}

// Health fetches the liveness probe.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/livez", nil)
	if err != nil {
		return nil, fmt.Errorf("careersdk: build request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("careersdk: send request: %w", err)
	}
	defer resp.Body.Close()

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("careersdk: decode response: %w", err)
	}
	return &health, nil
}

// postJSON performs a JSON POST and decodes the success body into out.
// Non-success statuses are converted into *APIError.
func (c *Client) postJSON(
	ctx context.Context,
	path, bearer string,
	in, out any,
	wantStatus int,
) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("careersdk: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+path,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("careersdk: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("careersdk: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return parseAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("careersdk: decode response: %w", err)
	}
	return nil
}

// parseAPIError turns an error response into an *APIError, degrading
// gracefully when the body isn't the expected JSON shape.
func parseAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))),
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        body.Error,
		Description: body.ErrorDescription,
	}
}
