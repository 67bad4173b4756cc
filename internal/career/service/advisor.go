package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pathfinderai/pathfinder/internal/career/domain"
	"github.com/pathfinderai/pathfinder/internal/career/store"
	"github.com/pathfinderai/pathfinder/pkg/slogx"
)

var (
	// ErrUpstream reports that the generation API was unreachable or
	// answered with a non-success status.
	ErrUpstream = errors.New("upstream generation call failed")

	// ErrMalformedReply reports that the upstream reply could not be parsed
	// into the expected recommendation array.
	ErrMalformedReply = errors.New("upstream reply was not valid recommendation JSON")

	// ErrEmptyQuery rejects a live-search request with no question in it.
	ErrEmptyQuery = errors.New("query must not be empty")
)

// ContentGenerator is the single upstream operation the advisor depends on.
// *genai.Client satisfies it; tests substitute a scripted fake.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AdvisorService orchestrates the two upstream-backed flows: structured
// career recommendations and free-text live answers. Every upstream call is
// attempted exactly once per request; there are no retries.
type AdvisorService struct {
	Store     store.Store
	Generator ContentGenerator
}

// Recommend builds the counselor prompt from the user's stored academic
// profile plus the free-text inputs, calls the generation API, and parses
// the reply into career paths. Nothing is persisted.
func (s *AdvisorService) Recommend(
	ctx context.Context,
	userID int64,
	skills, interests, personality string,
) ([]domain.Recommendation, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}

	var details domain.AcademicDetails
	if user.AcademicDetails != nil {
		details = *user.AcademicDetails
	}

	prompt := recommendationPrompt(details, skills, interests, personality)

	reply, err := s.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		log.Error("recommendation upstream call failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	cleaned := stripCodeFences(reply)

	var recommendations []domain.Recommendation
	if err := json.Unmarshal([]byte(cleaned), &recommendations); err != nil {
		log.Error("recommendation reply unparseable",
			slog.Any("error", err),
			slog.Int("reply_len", len(reply)),
		)
		return nil, fmt.Errorf("%w: %w", ErrMalformedReply, err)
	}

	return recommendations, nil
}

// Answer forwards a single career question and returns the prose reply
// untouched. The authenticated user gates access only; nothing about them
// goes into the prompt.
func (s *AdvisorService) Answer(ctx context.Context, query string) (string, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyQuery
	}

	reply, err := s.Generator.GenerateContent(ctx, liveAnswerPrompt(query))
	if err != nil {
		log.Error("live answer upstream call failed", slog.Any("error", err))
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return reply, nil
}

// stripCodeFences removes markdown code-fence markers the model may have
// wrapped the JSON in.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
