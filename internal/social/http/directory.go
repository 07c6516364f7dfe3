package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/mingle/internal/social/service"
	"github.com/aussiebroadwan/mingle/pkg/httpx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
	"github.com/aussiebroadwan/mingle/pkg/socialsdk"
)

type DirectoryHandler struct {
	Directory *service.DirectoryService
}

// HandleSearch serves the user directory. The viewer identity is optional;
// with a token the IsFollowing flags reflect that viewer's edges.
func (h *DirectoryHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	query := r.URL.Query().Get("q")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			socialsdk.ErrValidation.WriteError(w)
			return
		}
		limit = parsed
	}

	viewerID := httpx.UserIDFromContext(ctx)

	summaries, err := h.Directory.Search(ctx, query, viewerID, limit)
	if err != nil {
		log.Warn("directory search failed", "query", query, "err", err)
		writeServiceError(w, err)
		return
	}

	entries := make([]socialsdk.DirectoryEntry, 0, len(summaries))
	for _, s := range summaries {
		entries = append(entries, socialsdk.DirectoryEntry{
			ID:             s.ID,
			Name:           s.DisplayName,
			Username:       s.Username,
			AvatarURL:      s.AvatarURL,
			FollowerCount:  s.FollowerCount,
			IsFollowing:    s.IsFollowing,
			RecentActivity: s.RecentActivity,
			IsNewUser:      s.IsNewUser,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, socialsdk.DirectoryResponse{Users: entries})
}

// HandleOverview serves the aggregate counters for the directory header.
func (h *DirectoryHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	overview, err := h.Directory.Overview(ctx)
	if err != nil {
		log.Warn("directory overview failed", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, socialsdk.DirectoryOverviewResponse{
		TotalUsers:  overview.TotalUsers,
		ActiveToday: overview.ActiveToday,
		NewThisWeek: overview.NewThisWeek,
	})
}
