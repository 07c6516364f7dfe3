package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/aussiebroadwan/mingle/pkg/idx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
)

// maxPostLength matches what the feed renderer is willing to display.
const maxPostLength = 2000

// EngagementService is the write path for posts and likes, whose counts feed
// the stats aggregation.
type EngagementService struct {
	Store store.Store
	Now   func() time.Time // defaults to time.Now UTC when nil
}

func (s *EngagementService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// CreatePost stores a new post and bumps the author's activity timestamp.
func (s *EngagementService) CreatePost(ctx context.Context, authorID, content string) (domain.Post, error) {
	log := slogx.FromContext(ctx)

	if authorID == "" {
		return domain.Post{}, ErrAuthenticationRequired
	}
	content = strings.TrimSpace(content)
	if content == "" || len(content) > maxPostLength {
		return domain.Post{}, ErrValidation
	}

	if _, err := s.Store.Users().GetUserByID(ctx, authorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrNotFound
		}
		log.Error("failed to load author", slog.String("author_id", authorID), slog.Any("error", err))
		return domain.Post{}, ErrStorageUnavailable
	}

	now := s.now()
	post := domain.Post{
		ID:        idx.New().String(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: now,
	}

	if err := s.Store.Engagement().CreatePost(ctx, post); err != nil {
		log.Error("failed to create post", slog.String("author_id", authorID), slog.Any("error", err))
		return domain.Post{}, ErrStorageUnavailable
	}

	// Posting counts as activity. Best effort; the post itself is committed.
	if err := s.Store.Users().TouchLastActive(ctx, authorID, now); err != nil {
		log.Warn("failed to touch author activity", slog.String("author_id", authorID), slog.Any("error", err))
	}

	return post, nil
}

// LikePost records the actor's like on a post. Liking a post twice is a
// no-op, not an error.
func (s *EngagementService) LikePost(ctx context.Context, actorID, postID string) error {
	log := slogx.FromContext(ctx)

	if actorID == "" {
		return ErrAuthenticationRequired
	}
	if postID == "" {
		return ErrValidation
	}

	if _, err := s.Store.Engagement().GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		log.Error("failed to load post", slog.String("post_id", postID), slog.Any("error", err))
		return ErrStorageUnavailable
	}

	err := s.Store.Engagement().AddLike(ctx, postID, actorID, s.now())
	if errors.Is(err, store.ErrAlreadyExists) {
		return nil
	}
	if err != nil {
		log.Error("failed to record like", slog.String("post_id", postID), slog.Any("error", err))
		return ErrStorageUnavailable
	}
	return nil
}
