package http

import (
	"encoding/json"
	"net/http"

	"github.com/pathfinderai/pathfinder/internal/career/domain"
	"github.com/pathfinderai/pathfinder/internal/career/service"
	"github.com/pathfinderai/pathfinder/pkg/careersdk"
	"github.com/pathfinderai/pathfinder/pkg/httpx"
	"github.com/pathfinderai/pathfinder/pkg/slogx"
)

type SaveDetailsHandler struct {
	ProfileService *service.ProfileService
}

// ServeHTTP godoc
//
//	@Summary		Save Academic Details Endpoint
//	@Description	Store the authenticated user's academic background. The
//	@Description	record is replaced wholesale on every call.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		careersdk.AcademicDetails		true	"Academic background"
//	@Success		200		{object}	careersdk.SaveDetailsResponse	"message"
//	@Failure		400		{object}	careersdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	careersdk.ErrorResponse			"missing bearer token"
//	@Failure		403		{object}	careersdk.ErrorResponse			"token rejected"
//	@Failure		500		{object}	careersdk.ErrorResponse			"error, error_description"
//	@Router			/save-details [post].
func (h *SaveDetailsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		careersdk.ErrServerError.WriteError(w)
		return
	}

	var req careersdk.AcademicDetails
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		careersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	details := domain.AcademicDetails{
		Grade10:    req.Grade10,
		Grade12:    req.Grade12,
		Graduation: req.Graduation,
	}
	if err := h.ProfileService.SaveDetails(ctx, userID, details); err != nil {
		log.Error("failed to save academic details", "user_id", userID, "err", err)
		careersdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, careersdk.SaveDetailsResponse{
		Message: "Details saved successfully!",
	})
}
