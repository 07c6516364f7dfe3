package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
)

// StatsService combines follow counts with the engagement collaborator into
// the per-user activity snapshot.
type StatsService struct {
	Store store.Store
}

// GetUserStats returns the four-counter snapshot for a user. The counters
// are read outside a shared transaction; a follow landing between two
// sub-queries shows up as momentary skew, which is accepted read-time
// behaviour rather than a correctness violation.
func (s *StatsService) GetUserStats(ctx context.Context, userID string) (domain.UserStats, error) {
	log := slogx.FromContext(ctx)

	if userID == "" {
		return domain.UserStats{}, ErrValidation
	}

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.UserStats{}, ErrNotFound
		}
		log.Error("failed to load user for stats", slog.String("user_id", userID), slog.Any("error", err))
		return domain.UserStats{}, ErrStorageUnavailable
	}

	posts, err := s.Store.Engagement().CountPostsByAuthor(ctx, userID)
	if err != nil {
		log.Error("failed to count posts", slog.String("user_id", userID), slog.Any("error", err))
		return domain.UserStats{}, ErrStorageUnavailable
	}

	following, err := s.Store.Follows().CountFollowing(ctx, userID)
	if err != nil {
		log.Error("failed to count following", slog.String("user_id", userID), slog.Any("error", err))
		return domain.UserStats{}, ErrStorageUnavailable
	}

	followers, err := s.Store.Follows().CountFollowers(ctx, userID)
	if err != nil {
		log.Error("failed to count followers", slog.String("user_id", userID), slog.Any("error", err))
		return domain.UserStats{}, ErrStorageUnavailable
	}

	likes, err := s.Store.Engagement().CountLikesReceived(ctx, userID)
	if err != nil {
		log.Error("failed to count likes", slog.String("user_id", userID), slog.Any("error", err))
		return domain.UserStats{}, ErrStorageUnavailable
	}

	return domain.UserStats{
		PostsCreated:   posts,
		PeopleFollowed: following,
		LikesReceived:  likes,
		Followers:      followers,
	}, nil
}
