package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/mingle/internal/social/service"
	"github.com/aussiebroadwan/mingle/pkg/socialsdk"
)

// writeServiceError maps the service failure taxonomy onto API error
// responses. Anything outside the taxonomy becomes an opaque server error so
// storage details never leak to clients.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrAuthenticationRequired):
		socialsdk.ErrAuthenticationRequired.WriteError(w)
	case errors.Is(err, service.ErrSelfFollowNotAllowed):
		socialsdk.ErrSelfFollowNotAllowed.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		socialsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrValidation):
		socialsdk.ErrValidation.WriteError(w)
	case errors.Is(err, service.ErrUsernameTaken):
		socialsdk.ErrUsernameTaken.WriteError(w)
	case errors.Is(err, service.ErrStorageUnavailable):
		socialsdk.ErrStorageUnavailable.WriteError(w)
	default:
		socialsdk.ErrServerError.WriteError(w)
	}
}
