package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/aussiebroadwan/mingle/pkg/idx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]{3,30}$`)

// ProfileService owns the directory's profile write path. In production the
// upstream identity provider pushes profiles here on signup; the service
// itself never handles credentials.
type ProfileService struct {
	Store store.Store
	Now   func() time.Time // defaults to time.Now UTC when nil
}

func (s *ProfileService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Register creates a directory profile. Usernames are unique
// case-insensitively; the display name defaults to the username when absent.
func (s *ProfileService) Register(ctx context.Context, username, displayName, avatarURL string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return domain.User{}, ErrValidation
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = username
	}

	now := s.now()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		DisplayName:  displayName,
		AvatarURL:    strings.TrimSpace(avatarURL),
		JoinedAt:     now,
		LastActiveAt: now,
	}

	err := s.Store.Users().CreateUser(ctx, user)
	if errors.Is(err, store.ErrAlreadyExists) {
		log.Warn("registration with taken username", slog.String("username", username))
		return domain.User{}, ErrUsernameTaken
	}
	if err != nil {
		log.Error("failed to create user", slog.String("username", username), slog.Any("error", err))
		return domain.User{}, ErrStorageUnavailable
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

// GetByUsername resolves a profile by its case-insensitive username.
func (s *ProfileService) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, ErrStorageUnavailable
	}
	return u, nil
}

// TouchLastActive bumps the user's activity timestamp. Called whenever the
// user does something worth surfacing in the directory's recency flags.
func (s *ProfileService) TouchLastActive(ctx context.Context, userID string) error {
	err := s.Store.Users().TouchLastActive(ctx, userID, s.now())
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrStorageUnavailable
	}
	return nil
}
