package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &EngagementService{Store: st}
	ctx := context.Background()

	joined := time.Now().UTC().Add(-48 * time.Hour)
	alice := seedUser(t, st, "alice", joined)

	post, err := svc.CreatePost(ctx, alice.ID, "  hello world  ")
	require.NoError(t, err)
	require.NotEmpty(t, post.ID)
	require.Equal(t, "hello world", post.Content)

	// Posting bumps the author's activity timestamp.
	u, err := st.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.True(t, u.LastActiveAt.After(joined))

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, alice.ID, "   ")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("content too long", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, alice.ID, strings.Repeat("x", maxPostLength+1))
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown author", func(t *testing.T) {
		_, err := svc.CreatePost(ctx, "01BX5ZZKBKACTAV9WEVGEMMVS0", "hi")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLikePost(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &EngagementService{Store: st}
	stats := &StatsService{Store: st}
	ctx := context.Background()

	now := time.Now().UTC()
	alice := seedUser(t, st, "alice", now)
	bob := seedUser(t, st, "bob", now)

	post, err := svc.CreatePost(ctx, alice.ID, "likeable")
	require.NoError(t, err)

	require.NoError(t, svc.LikePost(ctx, bob.ID, post.ID))

	// Liking twice is a no-op, not an error, and the count stays at one.
	require.NoError(t, svc.LikePost(ctx, bob.ID, post.ID))

	got, err := stats.GetUserStats(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.LikesReceived)

	t.Run("unknown post", func(t *testing.T) {
		err := svc.LikePost(ctx, bob.ID, "01BX5ZZKBKACTAV9WEVGEMMVS0")
		require.ErrorIs(t, err, ErrNotFound)
	})
}
