package http

import (
	"encoding/json"
	"net/http"

	"github.com/pathfinderai/pathfinder/internal/career/service"
	"github.com/pathfinderai/pathfinder/pkg/careersdk"
	"github.com/pathfinderai/pathfinder/pkg/httpx"
	"github.com/pathfinderai/pathfinder/pkg/slogx"
)

type RecommendHandler struct {
	AdvisorService *service.AdvisorService
}

// ServeHTTP godoc
//
//	@Summary		Career Recommendations Endpoint
//	@Description	Generate three suggested career paths from the user's stored
//	@Description	academic profile and the free-text inputs. Nothing is persisted;
//	@Description	repeating the call may return different paths.
//	@Tags			Advisor
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		careersdk.RecommendRequest	true	"Skills, interests, personality"
//	@Success		200		{object}	careersdk.RecommendResponse	"recommendations"
//	@Failure		400		{object}	careersdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	careersdk.ErrorResponse		"missing bearer token"
//	@Failure		403		{object}	careersdk.ErrorResponse		"token rejected"
//	@Failure		500		{object}	careersdk.ErrorResponse		"upstream or parse failure"
//	@Router			/recommend [post].
func (h *RecommendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		careersdk.ErrServerError.WriteError(w)
		return
	}

	var req careersdk.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		careersdk.ErrInvalidRequest.WithDescription("invalid JSON body").WriteError(w)
		return
	}

	recommendations, err := h.AdvisorService.Recommend(ctx, userID, req.Skills, req.Interests, req.Personality)
	if err != nil {
		// Upstream detail is deliberately kept out of the response body.
		log.Error("failed to generate recommendations", "user_id", userID, "err", err)
		careersdk.ErrServerError.WriteError(w)
		return
	}

	resp := careersdk.RecommendResponse{
		Recommendations: make([]careersdk.Recommendation, 0, len(recommendations)),
	}
	for _, rec := range recommendations {
		resp.Recommendations = append(resp.Recommendations, careersdk.Recommendation{
			Title:         rec.Title,
			Description:   rec.Description,
			SkillsToLearn: rec.SkillsToLearn,
		})
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, resp)
}
