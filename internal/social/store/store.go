package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable, and to make it obvious when someone is about to
// nest a transaction inside a transaction.
type Store interface {
	Users() Users
	Follows() Follows
	Engagement() Engagement

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx; it cannot leak an open transaction.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a directory profile by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername resolves a profile by its case-insensitive username.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new profile (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// TouchLastActive bumps last_active_at for a user.
	TouchLastActive(ctx context.Context, userID string, at time.Time) error

	// SearchUsers returns profiles with their live follower counts. An empty
	// query matches everyone ordered by last_active_at descending; otherwise
	// query must already be trimmed and lower-cased and matches as a
	// substring of username or display name, ordered by username ascending.
	// Username ascending breaks all ties.
	SearchUsers(ctx context.Context, query string, limit int) ([]domain.DirectoryUser, error)

	// GetDirectoryUsersByID fetches profiles with follower counts for the
	// given ids. Missing ids are silently skipped; order is unspecified.
	GetDirectoryUsersByID(ctx context.Context, ids []string) ([]domain.DirectoryUser, error)

	// ListUserIDsExcluding returns every user id except the actor and
	// everyone the actor already follows. This is the sampler's eligible
	// pool.
	ListUserIDsExcluding(ctx context.Context, actorID string) ([]string, error)

	CountUsers(ctx context.Context) (int, error)
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
	CountJoinedSince(ctx context.Context, since time.Time) (int, error)
}

type Follows interface {
	// CreateEdge inserts a follow edge. Returns ErrAlreadyExists when the
	// pair is already present, which a concurrent toggle uses to detect a
	// lost race.
	CreateEdge(ctx context.Context, e domain.FollowEdge) error

	// DeleteEdge removes the edge for the pair and reports whether a row was
	// actually deleted.
	DeleteEdge(ctx context.Context, followerID, followeeID string) (bool, error)

	// EdgeExists is a pure lookup with no side effects.
	EdgeExists(ctx context.Context, followerID, followeeID string) (bool, error)

	// CountFollowers counts edges pointing at the user. Computed live so it
	// can never drift from the edge set.
	CountFollowers(ctx context.Context, userID string) (int, error)

	// CountFollowing counts edges originating from the user.
	CountFollowing(ctx context.Context, userID string) (int, error)

	// ListFolloweeIDs returns the ids the follower currently follows.
	ListFolloweeIDs(ctx context.Context, followerID string) ([]string, error)
}

// Engagement is the post/like collaborator consumed by the stats aggregation.
// It lives behind its own interface so it can move to a separate service
// without touching callers.
type Engagement interface {
	// CreatePost inserts a new post (id is provided by the app via ULID).
	CreatePost(ctx context.Context, p domain.Post) error

	// GetPostByID returns a post by id.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// AddLike records a like. Returns ErrAlreadyExists when the user already
	// liked the post.
	AddLike(ctx context.Context, postID, userID string, at time.Time) error

	// CountPostsByAuthor counts posts created by the user.
	CountPostsByAuthor(ctx context.Context, authorID string) (int, error)

	// CountLikesReceived counts likes across all of the user's posts.
	CountLikesReceived(ctx context.Context, authorID string) (int, error)
}
