package careersdk

import (
	"context"
	"net/http"
)

// Session is an authenticated client for the protected endpoints. It holds
// the bearer token from a successful login; the token is stateless and stays
// valid until its 24-hour expiry regardless of what the session does.
type Session struct {
	client *Client
	token  string
}

// Token exposes the raw session token, e.g. for persisting across restarts.
func (s *Session) Token() string { return s.token }

// SaveDetails overwrites the user's academic profile wholesale.
func (s *Session) SaveDetails(ctx context.Context, details AcademicDetails) (*SaveDetailsResponse, error) {
	var resp SaveDetailsResponse
	if err := s.client.postJSON(ctx, "/save-details", s.token, details, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Recommend requests three career-path recommendations built from the
// stored academic profile plus the free-text inputs.
func (s *Session) Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error) {
	var resp RecommendResponse
	if err := s.client.postJSON(ctx, "/recommend", s.token, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LiveSearch asks a single career question and returns the prose answer.
func (s *Session) LiveSearch(ctx context.Context, query string) (*LiveSearchResponse, error) {
	var resp LiveSearchResponse
	req := LiveSearchRequest{Query: query}
	if err := s.client.postJSON(ctx, "/live-search", s.token, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}
