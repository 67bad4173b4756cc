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

type LiveSearchHandler struct {
	AdvisorService *service.AdvisorService
}

// ServeHTTP godoc
//
//	@Summary		Live Career Search Endpoint
//	@Description	Answer a single free-text career question with a prose reply
//	@Tags			Advisor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		careersdk.LiveSearchRequest		true	"Career question"
//	@Success		200		{object}	careersdk.LiveSearchResponse	"answer"
//	@Failure		400		{object}	careersdk.ErrorResponse			"empty query"
//	@Failure		401		{object}	careersdk.ErrorResponse			"missing bearer token"
//	@Failure		403		{object}	careersdk.ErrorResponse			"token rejected"
//	@Failure		500		{object}	careersdk.ErrorResponse			"upstream failure"
//	@Router			/live-search [post].
func (h *LiveSearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req careersdk.LiveSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		careersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	answer, err := h.AdvisorService.Answer(ctx, req.Query)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			careersdk.ErrInvalidRequest.WithDescription("query is required").WriteError(w)
			return
		}
		log.Error("failed to answer live search", "err", err)
		careersdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, careersdk.LiveSearchResponse{Answer: answer})
}
