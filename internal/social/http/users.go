package http

import (
	"net/http"

	"github.com/aussiebroadwan/mingle/internal/social/service"
	"github.com/aussiebroadwan/mingle/pkg/httpx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
	"github.com/aussiebroadwan/mingle/pkg/socialsdk"
)

type UsersHandler struct {
	Profiles *service.ProfileService
}

// HandleRegister creates a directory profile from the submitted username and
// optional display details.
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req socialsdk.RegisterUserRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		socialsdk.ErrValidation.WriteError(w)
		return
	}

	user, err := h.Profiles.Register(ctx, req.Username, req.DisplayName, req.AvatarURL)
	if err != nil {
		log.Warn("user registration failed", "username", req.Username, "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, socialsdk.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Name:         user.DisplayName,
		AvatarURL:    user.AvatarURL,
		JoinedAt:     user.JoinedAt,
		LastActiveAt: user.LastActiveAt,
	})
}
