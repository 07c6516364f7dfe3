package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
)

// errLostToggleRace signals that a concurrent toggle created the edge between
// our delete attempt and our insert. Re-running the toggle once resolves it.
var errLostToggleRace = errors.New("lost toggle race")

// RelationshipService is the sole authority over follow edges. Every edge
// mutation in the system goes through Toggle; the reads are plain lookups
// that take no locks and may trail a concurrent mutation slightly.
type RelationshipService struct {
	Store  store.Store
	Events FollowEventPublisher // optional
	Now    func() time.Time     // defaults to time.Now UTC when nil
}

func (s *RelationshipService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Toggle flips the follow edge from actor to target and reports the
// resulting state: true when the edge now exists, false when it no longer
// does. The flip runs inside a transaction keyed on the unique
// (follower, followee) pair, so concurrent toggles on the same pair can never
// leave more than one edge and toggles on unrelated pairs never contend.
func (s *RelationshipService) Toggle(ctx context.Context, actorID, targetID string) (bool, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate identities before touching storage.
	if actorID == "" {
		return false, ErrAuthenticationRequired
	}
	if targetID == "" {
		return false, ErrValidation
	}
	if actorID == targetID {
		return false, ErrSelfFollowNotAllowed
	}

	// 2. The target must be a real directory profile.
	if err := s.checkTargetExists(ctx, targetID); err != nil {
		return false, err
	}

	// 3. Flip the edge. A lost insert race means another toggle created the
	// edge first; re-running once deletes it, which is the correct net
	// result of two toggles on the same pair.
	following, err := s.toggleOnce(ctx, actorID, targetID)
	if errors.Is(err, errLostToggleRace) {
		following, err = s.toggleOnce(ctx, actorID, targetID)
	} else if err != nil {
		// One internal retry for transient storage faults. The failed
		// attempt rolled back, so state is untouched.
		log.Warn("toggle retrying after storage error",
			slog.String("actor_id", actorID),
			slog.String("target_id", targetID),
			slog.Any("error", err),
		)
		following, err = s.toggleOnce(ctx, actorID, targetID)
	}
	if err != nil {
		log.Error("toggle failed",
			slog.String("actor_id", actorID),
			slog.String("target_id", targetID),
			slog.Any("error", err),
		)
		return false, ErrStorageUnavailable
	}

	// 4. Tell the notification side. The edge is already committed.
	if s.Events != nil {
		s.Events.PublishFollowStateChanged(ctx, domain.FollowStateChanged{
			ActorID:     actorID,
			TargetID:    targetID,
			IsFollowing: following,
			At:          s.now(),
		})
	}

	log.Debug("follow toggled",
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
		slog.Bool("is_following", following),
	)
	return following, nil
}

// toggleOnce performs one delete-if-present-else-create pass inside a
// transaction. The unique index on the pair makes the create side race-safe
// across concurrent writers.
func (s *RelationshipService) toggleOnce(ctx context.Context, actorID, targetID string) (bool, error) {
	var following bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		deleted, err := tx.Follows().DeleteEdge(ctx, actorID, targetID)
		if err != nil {
			return err
		}
		if deleted {
			following = false
			return nil
		}

		err = tx.Follows().CreateEdge(ctx, domain.FollowEdge{
			FollowerID: actorID,
			FolloweeID: targetID,
			CreatedAt:  s.now(),
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return errLostToggleRace
		}
		if err != nil {
			return err
		}
		following = true
		return nil
	})
	return following, err
}

func (s *RelationshipService) checkTargetExists(ctx context.Context, targetID string) error {
	_, err := s.Store.Users().GetUserByID(ctx, targetID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		// Retry the lookup once before declaring storage unavailable.
		_, err = s.Store.Users().GetUserByID(ctx, targetID)
	}
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrStorageUnavailable
	}
	return nil
}

// IsFollowing reports whether actor currently follows target. Pure lookup,
// no side effects.
func (s *RelationshipService) IsFollowing(ctx context.Context, actorID, targetID string) (bool, error) {
	return s.Store.Follows().EdgeExists(ctx, actorID, targetID)
}

// FollowerCount counts edges pointing at the user, computed live from the
// edge set so it can never drift.
func (s *RelationshipService) FollowerCount(ctx context.Context, userID string) (int, error) {
	return s.Store.Follows().CountFollowers(ctx, userID)
}

// FollowingCount counts edges originating from the user.
func (s *RelationshipService) FollowingCount(ctx context.Context, userID string) (int, error) {
	return s.Store.Follows().CountFollowing(ctx, userID)
}
