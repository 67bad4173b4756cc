package genai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("gemini-1.5-flash", "test-key", 5*time.Second)
	c.BaseURL = srv.URL
	return c
}

func TestGenerateContentReturnsFirstCandidateText(t *testing.T) {
	var gotPath string
	var gotBody generateRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := generateResponse{
			Candidates: []candidate{{
				Content: content{Parts: []part{{Text: "generated answer"}}},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	text, err := client.GenerateContent(t.Context(), "what is a data engineer?")
	require.NoError(t, err)
	require.Equal(t, "generated answer", text)

	require.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	require.Equal(t, "what is a data engineer?", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateContentNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	})

	_, err := client.GenerateContent(t.Context(), "prompt")
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	require.Contains(t, upstream.Body, "quota exceeded")
}

func TestGenerateContentUnreachableUpstream(t *testing.T) {
	client := NewClient("gemini-1.5-flash", "test-key", time.Second)
	client.BaseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := client.GenerateContent(t.Context(), "prompt")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	require.NotNil(t, upstream.Err)
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.GenerateContent(t.Context(), "prompt")
	require.ErrorIs(t, err, ErrNoCandidates)
}

func TestGenerateContentUndecodableReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.GenerateContent(t.Context(), "prompt")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
}

func TestGenerateContentHonoursContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// The server only notices the client going away once the body is
		// consumed. The timeout fallback keeps srv.Close from waiting on
		// this handler if cancellation is never delivered.
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()

	_, err := client.GenerateContent(ctx, "prompt")
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
}
