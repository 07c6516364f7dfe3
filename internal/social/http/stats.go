package http

import (
	"net/http"

	"github.com/aussiebroadwan/mingle/internal/social/service"
	"github.com/aussiebroadwan/mingle/pkg/httpx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
	"github.com/aussiebroadwan/mingle/pkg/socialsdk"
)

type StatsHandler struct {
	Stats *service.StatsService
}

// ServeHTTP returns the activity snapshot for one user.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := r.PathValue("id")

	stats, err := h.Stats.GetUserStats(ctx, userID)
	if err != nil {
		log.Warn("user stats lookup failed", "user_id", userID, "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, socialsdk.UserStatsResponse{
		PostsCreated:   stats.PostsCreated,
		PeopleFollowed: stats.PeopleFollowed,
		LikesReceived:  stats.LikesReceived,
		Followers:      stats.Followers,
	})
}
