package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetUserStats(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	stats := &StatsService{Store: st}
	rels := &RelationshipService{Store: st}
	engagement := &EngagementService{Store: st}
	ctx := context.Background()

	now := time.Now().UTC()
	alice := seedUser(t, st, "alice", now)

	// 5 accounts alice follows, the first 2 follow her back.
	for i := range 5 {
		other := seedUser(t, st, fmt.Sprintf("user%d", i), now)
		_, err := rels.Toggle(ctx, alice.ID, other.ID)
		require.NoError(t, err)
		if i < 2 {
			_, err = rels.Toggle(ctx, other.ID, alice.ID)
			require.NoError(t, err)
		}
	}

	// 3 posts; 7 likes spread across them from distinct users.
	fans := make([]string, 0, 7)
	for i := range 7 {
		fan := seedUser(t, st, fmt.Sprintf("fan%d", i), now)
		fans = append(fans, fan.ID)
	}
	likes := []int{3, 3, 1}
	next := 0
	for i := range 3 {
		post, err := engagement.CreatePost(ctx, alice.ID, fmt.Sprintf("post %d", i))
		require.NoError(t, err)
		for range likes[i] {
			require.NoError(t, engagement.LikePost(ctx, fans[next], post.ID))
			next++
		}
	}

	got, err := stats.GetUserStats(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.PostsCreated)
	require.Equal(t, 5, got.PeopleFollowed)
	require.Equal(t, 7, got.LikesReceived)
	require.Equal(t, 2, got.Followers)
}

func TestGetUserStatsFreshUser(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	stats := &StatsService{Store: st}
	ctx := context.Background()

	alice := seedUser(t, st, "alice", time.Now().UTC())

	got, err := stats.GetUserStats(ctx, alice.ID)
	require.NoError(t, err)
	require.Zero(t, got.PostsCreated)
	require.Zero(t, got.PeopleFollowed)
	require.Zero(t, got.LikesReceived)
	require.Zero(t, got.Followers)
}

func TestGetUserStatsUnknownUser(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	stats := &StatsService{Store: st}
	ctx := context.Background()

	_, err := stats.GetUserStats(ctx, "01BX5ZZKBKACTAV9WEVGEMMVS0")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = stats.GetUserStats(ctx, "")
	require.ErrorIs(t, err, ErrValidation)
}
