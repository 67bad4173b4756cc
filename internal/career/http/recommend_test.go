package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/pathfinderai/pathfinder/pkg/careersdk"
	"github.com/stretchr/testify/require"
)

func TestRecommendReturnsParsedPaths(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n" +
		`[{"title":"Data Scientist","description":"Works with data.","skills_to_learn":["Python","SQL"]}]` +
		"\n```"}
	r := newTestRouter(t, gen)
	token := signupAndLogin(t, r, "alice@example.com")

	var resp careersdk.RecommendResponse
	rec := doJSON(t, r, http.MethodPost, "/recommend", token, careersdk.RecommendRequest{
		Skills:      "maths",
		Interests:   "puzzles",
		Personality: "analytical",
	}, &resp)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Recommendations, 1)
	require.Equal(t, "Data Scientist", resp.Recommendations[0].Title)
	require.Equal(t, []string{"Python", "SQL"}, resp.Recommendations[0].SkillsToLearn)
}

func TestRecommendWithoutTokenNeverCallsUpstream(t *testing.T) {
	gen := &fakeGenerator{reply: "[]"}
	r := newTestRouter(t, gen)

	rec := doJSON(t, r, http.MethodPost, "/recommend", "", careersdk.RecommendRequest{}, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Zero(t, gen.calls)
}

func TestRecommendWithBadTokenNeverCallsUpstream(t *testing.T) {
	gen := &fakeGenerator{reply: "[]"}
	r := newTestRouter(t, gen)

	rec := doJSON(t, r, http.MethodPost, "/recommend", "garbage.token.here", careersdk.RecommendRequest{}, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Zero(t, gen.calls)
}

func TestRecommendUpstreamFailureIsServerError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream said 503")}
	r := newTestRouter(t, gen)
	token := signupAndLogin(t, r, "alice@example.com")

	var resp careersdk.ErrorResponse
	rec := doJSON(t, r, http.MethodPost, "/recommend", token, careersdk.RecommendRequest{}, &resp)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, careersdk.ErrorCodeServerError, resp.Error)
	// The upstream detail must not leak to the client.
	require.NotContains(t, resp.ErrorDescription, "503")
}

func TestRecommendMalformedReplyIsServerError(t *testing.T) {
	gen := &fakeGenerator{reply: "sorry, no JSON today"}
	r := newTestRouter(t, gen)
	token := signupAndLogin(t, r, "alice@example.com")

	rec := doJSON(t, r, http.MethodPost, "/recommend", token, careersdk.RecommendRequest{}, nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
