package service

import "errors"

// Failure taxonomy surfaced by the social services. The HTTP edge maps these
// onto API error responses; raw storage faults are never allowed to escape.
var (
	// ErrAuthenticationRequired means a mutation was attempted without an
	// actor identity.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrSelfFollowNotAllowed rejects follow edges from a user to itself.
	ErrSelfFollowNotAllowed = errors.New("cannot follow yourself")

	// ErrNotFound means the referenced user or post does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is returned after a storage fault survived one
	// internal retry. State is unchanged when this comes back.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrValidation covers malformed input such as a negative count or
	// limit, or an empty id.
	ErrValidation = errors.New("invalid request")

	// ErrUsernameTaken means the requested username is already registered
	// (usernames are unique case-insensitively).
	ErrUsernameTaken = errors.New("username already taken")
)
