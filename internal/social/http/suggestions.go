package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/mingle/internal/social/service"
	"github.com/aussiebroadwan/mingle/pkg/httpx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
	"github.com/aussiebroadwan/mingle/pkg/socialsdk"
)

type SuggestionsHandler struct {
	Suggestions *service.SuggestionService

	// DefaultCount is used when the caller does not pass ?count=.
	DefaultCount int
}

// ServeHTTP returns accounts the authenticated actor does not follow yet,
// drawn uniformly from the eligible pool.
func (h *SuggestionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		socialsdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	count := h.DefaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			socialsdk.ErrValidation.WriteError(w)
			return
		}
		count = parsed
	}

	summaries, err := h.Suggestions.Sample(ctx, actorID, count)
	if err != nil {
		log.Warn("suggestion sampling failed", "actor_id", actorID, "err", err)
		writeServiceError(w, err)
		return
	}

	entries := make([]socialsdk.SuggestionEntry, 0, len(summaries))
	for _, s := range summaries {
		entries = append(entries, socialsdk.SuggestionEntry{
			ID:            s.ID,
			Name:          s.DisplayName,
			Username:      s.Username,
			AvatarURL:     s.AvatarURL,
			FollowerCount: s.FollowerCount,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, socialsdk.SuggestionsResponse{Users: entries})
}
