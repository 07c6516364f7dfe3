package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/aussiebroadwan/mingle/internal/social/store/drivers/sqlite"
	"github.com/aussiebroadwan/mingle/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens an in-memory sqlite store with migrations applied.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedUser inserts a profile with both timestamps set to at.
func seedUser(t *testing.T, st store.Store, username string, at time.Time) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		DisplayName:  username,
		JoinedAt:     at,
		LastActiveAt: at,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

// captureEvents is a FollowEventPublisher that records everything published.
type captureEvents struct {
	mu     sync.Mutex
	events []domain.FollowStateChanged
}

func (c *captureEvents) PublishFollowStateChanged(_ context.Context, ev domain.FollowStateChanged) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

func (c *captureEvents) all() []domain.FollowStateChanged {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.FollowStateChanged(nil), c.events...)
}
