package socialsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/mingle/pkg/httpx"
)

// API error codes returned by the social service.
const (
	ErrorCodeAuthenticationRequired = "authentication_required"
	ErrorCodeSelfFollow             = "self_follow_not_allowed"
	ErrorCodeNotFound               = "not_found"
	ErrorCodeStorageUnavailable     = "storage_unavailable"
	ErrorCodeValidation             = "validation_error"
	ErrorCodeUsernameTaken          = "username_taken"
	ErrorCodeServerError            = "server_error"
)

// APIError is the wire form of a failed operation. It implements the error
// interface so both the server (to write responses) and the SDK client (to
// represent failures) can use the same type.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrAuthenticationRequired: a mutation arrived without an actor
	// identity.
	ErrAuthenticationRequired = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeAuthenticationRequired,
		Description: "an authenticated actor is required for this operation",
	}

	// ErrSelfFollowNotAllowed: a user tried to follow themselves.
	ErrSelfFollowNotAllowed = &APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		Code:        ErrorCodeSelfFollow,
		Description: "you cannot follow yourself",
	}

	// ErrNotFound: the referenced user or post does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "the requested resource does not exist",
	}

	// ErrStorageUnavailable: the backing store failed twice in a row; the
	// operation left no partial state behind.
	ErrStorageUnavailable = &APIError{
		StatusCode:  http.StatusServiceUnavailable,
		Code:        ErrorCodeStorageUnavailable,
		Description: "storage is temporarily unavailable, please retry",
	}

	// ErrValidation: malformed input such as a negative count or limit.
	ErrValidation = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidation,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrUsernameTaken: the requested username is already registered.
	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUsernameTaken,
		Description: "that username is already taken",
	}

	// ErrServerError: anything we did not anticipate.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseAPIError decodes an error response body into an *APIError. Used by
// the SDK client.
func parseAPIError(resp *http.Response) error {
	var e APIError
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response with status %d", resp.StatusCode),
		}
	}
	e.StatusCode = resp.StatusCode
	return &e
}
