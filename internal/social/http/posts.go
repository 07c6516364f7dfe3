package http

import (
	"net/http"

	"github.com/aussiebroadwan/mingle/internal/social/service"
	"github.com/aussiebroadwan/mingle/pkg/httpx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
	"github.com/aussiebroadwan/mingle/pkg/socialsdk"
)

type PostsHandler struct {
	Engagement *service.EngagementService
}

// HandleCreate publishes a post authored by the authenticated actor.
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		socialsdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	var req socialsdk.CreatePostRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		socialsdk.ErrValidation.WriteError(w)
		return
	}

	post, err := h.Engagement.CreatePost(ctx, actorID, req.Content)
	if err != nil {
		log.Warn("post creation failed", "author_id", actorID, "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, socialsdk.PostResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	})
}

// HandleLike records the actor's like on a post. Liking the same post twice
// is a no-op, matching the idempotent follow toggle.
func (h *PostsHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	actorID := httpx.UserIDFromContext(ctx)
	if actorID == "" {
		socialsdk.ErrAuthenticationRequired.WriteError(w)
		return
	}

	postID := r.PathValue("id")

	if err := h.Engagement.LikePost(ctx, actorID, postID); err != nil {
		log.Warn("like failed", "post_id", postID, "actor_id", actorID, "err", err)
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
