package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pathfinderai/pathfinder/internal/career/service"
	"github.com/pathfinderai/pathfinder/pkg/careersdk"
	"github.com/pathfinderai/pathfinder/pkg/httpx"
	"github.com/pathfinderai/pathfinder/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a 24-hour session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		careersdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	careersdk.LoginResponse	"message, token"
//	@Failure		400		{object}	careersdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	careersdk.ErrorResponse	"wrong password"
//	@Failure		404		{object}	careersdk.ErrorResponse	"no account for email"
//	@Failure		500		{object}	careersdk.ErrorResponse	"error, error_description"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req careersdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		careersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	if req.Email == "" {
		careersdk.ErrInvalidRequest.WithDescription("email is required").WriteError(w)
		return
	}
	if req.Password == "" {
		careersdk.ErrInvalidRequest.WithDescription("password is required").WriteError(w)
		return
	}

	token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			careersdk.ErrUserNotFound.WriteError(w)
		case errors.Is(err, service.ErrInvalidPassword):
			careersdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("failed to log user in", "err", err)
			careersdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, careersdk.LoginResponse{
		Message: "Login successful!",
		Token:   token,
	})
}
