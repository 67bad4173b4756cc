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

type SignupHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Create Account Endpoint
//	@Description	Register a new user account with name, email, and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		careersdk.SignupRequest		true	"Account details"
//	@Success		201		{object}	careersdk.SignupResponse	"message"
//	@Failure		400		{object}	careersdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	careersdk.ErrorResponse		"email already registered"
//	@Failure		500		{object}	careersdk.ErrorResponse		"error, error_description"
//	@Router			/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req careersdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		careersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	if req.Name == "" {
		careersdk.ErrInvalidRequest.WithDescription("name is required").WriteError(w)
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

	if _, err := h.AuthService.Signup(ctx, req.Name, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			careersdk.ErrEmailInUse.WriteError(w)
			return
		}
		log.Error("failed to create user", "err", err)
		careersdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, careersdk.SignupResponse{
		Message: "User created successfully!",
	})
}
