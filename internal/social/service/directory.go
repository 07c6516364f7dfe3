package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
)

const (
	// DefaultSearchLimit caps a directory page when the caller does not ask
	// for a specific size.
	DefaultSearchLimit = 50

	// DefaultActivityWindow marks a user as recently active.
	DefaultActivityWindow = 24 * time.Hour

	// DefaultNewUserWindow marks a user as new to the directory.
	DefaultNewUserWindow = 7 * 24 * time.Hour
)

// DirectoryService presents the filterable, ordered user listing for
// discovery. It is a pure read path: every summary is recomputed on request
// and nothing here is authoritative state.
type DirectoryService struct {
	Store store.Store

	// Recency windows for the derived flags. Zero values fall back to the
	// defaults above.
	ActivityWindow time.Duration
	NewUserWindow  time.Duration

	Now func() time.Time // defaults to time.Now UTC when nil
}

func (s *DirectoryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DirectoryService) activityWindow() time.Duration {
	if s.ActivityWindow > 0 {
		return s.ActivityWindow
	}
	return DefaultActivityWindow
}

func (s *DirectoryService) newUserWindow() time.Duration {
	if s.NewUserWindow > 0 {
		return s.NewUserWindow
	}
	return DefaultNewUserWindow
}

// Search returns up to limit directory summaries. The query is trimmed and
// case-folded; an empty query matches everyone. Ordering is deterministic:
// username ascending for a non-empty query, last_active_at descending (then
// username ascending) when browsing. viewerID may be empty for anonymous
// callers, in which case every IsFollowing flag is false. An empty result is
// a normal outcome, not an error.
func (s *DirectoryService) Search(ctx context.Context, query, viewerID string, limit int) ([]domain.DirectorySummary, error) {
	log := slogx.FromContext(ctx)

	if limit < 0 {
		return nil, ErrValidation
	}
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	query = strings.ToLower(strings.TrimSpace(query))

	users, err := s.Store.Users().SearchUsers(ctx, query, limit)
	if err != nil {
		log.Error("directory search failed", slog.String("query", query), slog.Any("error", err))
		return nil, ErrStorageUnavailable
	}

	// The viewer's follow set in one query for the whole page.
	followed := make(map[string]struct{})
	if viewerID != "" {
		ids, err := s.Store.Follows().ListFolloweeIDs(ctx, viewerID)
		if err != nil {
			log.Error("failed to load viewer follow set", slog.String("viewer_id", viewerID), slog.Any("error", err))
			return nil, ErrStorageUnavailable
		}
		for _, id := range ids {
			followed[id] = struct{}{}
		}
	}

	now := s.now()
	out := make([]domain.DirectorySummary, 0, len(users))
	for _, u := range users {
		_, isFollowing := followed[u.ID]
		out = append(out, domain.DirectorySummary{
			User:           u.User,
			FollowerCount:  u.FollowerCount,
			IsFollowing:    isFollowing,
			RecentActivity: now.Sub(u.LastActiveAt) <= s.activityWindow(),
			IsNewUser:      now.Sub(u.JoinedAt) <= s.newUserWindow(),
		})
	}
	return out, nil
}

// Overview returns the aggregate counters shown above the directory listing.
// The three counts are separate queries; a registration landing between them
// is visible skew at read time, not an error.
func (s *DirectoryService) Overview(ctx context.Context) (domain.DirectoryOverview, error) {
	log := slogx.FromContext(ctx)
	now := s.now()

	total, err := s.Store.Users().CountUsers(ctx)
	if err != nil {
		log.Error("failed to count users", slog.Any("error", err))
		return domain.DirectoryOverview{}, ErrStorageUnavailable
	}

	active, err := s.Store.Users().CountActiveSince(ctx, now.Add(-s.activityWindow()))
	if err != nil {
		log.Error("failed to count active users", slog.Any("error", err))
		return domain.DirectoryOverview{}, ErrStorageUnavailable
	}

	joined, err := s.Store.Users().CountJoinedSince(ctx, now.Add(-s.newUserWindow()))
	if err != nil {
		log.Error("failed to count new users", slog.Any("error", err))
		return domain.DirectoryOverview{}, ErrStorageUnavailable
	}

	return domain.DirectoryOverview{
		TotalUsers:  total,
		ActiveToday: active,
		NewThisWeek: joined,
	}, nil
}
