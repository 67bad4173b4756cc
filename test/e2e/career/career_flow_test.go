package career_test

import (
	"net/http"
	"testing"

	"github.com/pathfinderai/pathfinder/pkg/careersdk"
	"github.com/stretchr/testify/require"
)

func TestFullGuidanceFlow(t *testing.T) {
	baseURL, upstream := startService(t)
	client := careersdk.NewClient(baseURL)
	ctx := t.Context()

	// Health first: service should be live and ready.
	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)

	// Create an account and log in.
	_, err = client.Signup(ctx, careersdk.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, careersdk.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())

	// Store academic background.
	_, err = session.SaveDetails(ctx, careersdk.AcademicDetails{
		Grade10:    "92%",
		Grade12:    "88%",
		Graduation: "B.Sc Computer Science",
	})
	require.NoError(t, err)

	// Ask for recommendations; the stored profile must reach the model.
	upstream.set("```json\n" +
		`[{"title":"Data Scientist","description":"Works with data.","skills_to_learn":["Python","SQL"]},` +
		`{"title":"ML Engineer","description":"Builds models.","skills_to_learn":["PyTorch"]},` +
		`{"title":"Data Analyst","description":"Analyses data.","skills_to_learn":["Excel","SQL"]}]` +
		"\n```")

	recs, err := session.Recommend(ctx, careersdk.RecommendRequest{
		Skills:      "python, statistics",
		Interests:   "machine learning",
		Personality: "analytical",
	})
	require.NoError(t, err)
	require.Len(t, recs.Recommendations, 3)
	require.Equal(t, "Data Scientist", recs.Recommendations[0].Title)

	prompt := upstream.lastPrompt()
	require.Contains(t, prompt, "92%")
	require.Contains(t, prompt, "B.Sc Computer Science")
	require.Contains(t, prompt, "python, statistics")

	// Live search returns the prose reply untouched.
	upstream.set("A machine learning engineer builds and deploys predictive models.")

	answer, err := session.LiveSearch(ctx, "What does a machine learning engineer do?")
	require.NoError(t, err)
	require.Equal(t, "A machine learning engineer builds and deploys predictive models.", answer.Answer)
	require.Contains(t, upstream.lastPrompt(), "What does a machine learning engineer do?")
}

func TestDuplicateSignupConflicts(t *testing.T) {
	baseURL, _ := startService(t)
	client := careersdk.NewClient(baseURL)
	ctx := t.Context()

	req := careersdk.SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}

	_, err := client.Signup(ctx, req)
	require.NoError(t, err)

	_, err = client.Signup(ctx, req)
	var apiErr *careersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, careersdk.ErrorCodeConflict, apiErr.Code)
}

func TestLoginFailuresAreDistinct(t *testing.T) {
	baseURL, _ := startService(t)
	client := careersdk.NewClient(baseURL)
	ctx := t.Context()

	_, err := client.Signup(ctx, careersdk.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = client.Login(ctx, careersdk.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	var apiErr *careersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	_, err = client.Login(ctx, careersdk.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestUpstreamFailureStaysInternal(t *testing.T) {
	baseURL, upstream := startService(t)
	client := careersdk.NewClient(baseURL)
	ctx := t.Context()

	_, err := client.Signup(ctx, careersdk.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, careersdk.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	upstream.fail(http.StatusTooManyRequests)

	_, err = session.Recommend(ctx, careersdk.RecommendRequest{Skills: "maths"})
	var apiErr *careersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, careersdk.ErrorCodeServerError, apiErr.Code)
	// Upstream status must not leak through the API boundary.
	require.NotContains(t, apiErr.Description, "429")
}

func TestRecommendationsWorkWithoutSavedProfile(t *testing.T) {
	baseURL, upstream := startService(t)
	client := careersdk.NewClient(baseURL)
	ctx := t.Context()

	_, err := client.Signup(ctx, careersdk.SignupRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	session, err := client.Login(ctx, careersdk.LoginRequest{
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	upstream.set(`[{"title":"Writer","description":"Writes.","skills_to_learn":["Editing"]}]`)

	recs, err := session.Recommend(ctx, careersdk.RecommendRequest{Interests: "storytelling"})
	require.NoError(t, err)
	require.Len(t, recs.Recommendations, 1)

	// Missing profile fields surface as placeholders, not empty strings.
	require.Contains(t, upstream.lastPrompt(), "N/A")
}
