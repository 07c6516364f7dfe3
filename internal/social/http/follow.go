package http

import (
	"net/http"

	"github.com/aussiebroadwan/mingle/internal/social/service"
	"github.com/aussiebroadwan/mingle/pkg/httpx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
	"github.com/aussiebroadwan/mingle/pkg/socialsdk"
)

type FollowHandler struct {
	Relationships *service.RelationshipService
}

// ServeHTTP toggles the authenticated actor's follow edge to the target user
// and reports the resulting state. A failed toggle changes nothing, so the
// client can reconcile its optimistic state straight from the response.
func (h *FollowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		socialsdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	targetID := r.PathValue("id")

	following, err := h.Relationships.Toggle(ctx, actorID, targetID)
	if err != nil {
		log.Warn("toggle follow failed",
			"actor_id", actorID,
			"target_id", targetID,
			"err", err,
		)
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, socialsdk.ToggleFollowResponse{
		Success:     true,
		IsFollowing: following,
	})
}
