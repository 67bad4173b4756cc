package http

import (
	"net/http"
	"testing"

	"github.com/pathfinderai/pathfinder/pkg/careersdk"
	"github.com/stretchr/testify/require"
)

func TestSignupCreatesAccount(t *testing.T) {
	r := newTestRouter(t, &fakeGenerator{})

	var resp careersdk.SignupResponse
	rec := doJSON(t, r, http.MethodPost, "/signup", "", careersdk.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	}, &resp)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "User created successfully!", resp.Message)
}

func TestSignupRejectsMissingFields(t *testing.T) {
	r := newTestRouter(t, &fakeGenerator{})

	cases := []struct {
		name string
		req  careersdk.SignupRequest
	}{
		{"missing name", careersdk.SignupRequest{Email: "a@example.com", Password: "pw"}},
		{"missing email", careersdk.SignupRequest{Name: "Alice", Password: "pw"}},
		{"missing password", careersdk.SignupRequest{Name: "Alice", Email: "a@example.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var resp careersdk.ErrorResponse
			rec := doJSON(t, r, http.MethodPost, "/signup", "", tc.req, &resp)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, careersdk.ErrorCodeInvalidRequest, resp.Error)
		})
	}
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	r := newTestRouter(t, &fakeGenerator{})

	req := careersdk.SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"}
	rec := doJSON(t, r, http.MethodPost, "/signup", "", req, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp careersdk.ErrorResponse
	rec = doJSON(t, r, http.MethodPost, "/signup", "", req, &resp)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, careersdk.ErrorCodeConflict, resp.Error)
}

func TestSignupRejectsMalformedBody(t *testing.T) {
	r := newTestRouter(t, &fakeGenerator{})

	rec := doJSON(t, r, http.MethodPost, "/signup", "", "not an object", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
