package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/stretchr/testify/require"
)

func TestCreateEdgeDuplicate(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, st, "alice")
	bob := seedUser(t, st, "bob")

	edge := domain.FollowEdge{
		FollowerID: alice.ID,
		FolloweeID: bob.ID,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, st.Follows().CreateEdge(ctx, edge))

	// The pair is the primary key; a second insert maps to ErrAlreadyExists.
	err := st.Follows().CreateEdge(ctx, edge)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestCreateEdgeSelfRejectedBySchema(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, st, "alice")

	// The service blocks self-follows first; the CHECK is the backstop for
	// writers that bypass it.
	err := st.Follows().CreateEdge(ctx, domain.FollowEdge{
		FollowerID: alice.ID,
		FolloweeID: alice.ID,
		CreatedAt:  time.Now().UTC(),
	})
	require.Error(t, err)
}

func TestDeleteEdgeReportsPresence(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, st, "alice")
	bob := seedUser(t, st, "bob")

	deleted, err := st.Follows().DeleteEdge(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	require.NoError(t, st.Follows().CreateEdge(ctx, domain.FollowEdge{
		FollowerID: alice.ID,
		FolloweeID: bob.ID,
		CreatedAt:  time.Now().UTC(),
	}))

	deleted, err = st.Follows().DeleteEdge(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, deleted)
}

func TestListFolloweeIDs(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	alice := seedUser(t, st, "alice")
	bob := seedUser(t, st, "bob")
	carol := seedUser(t, st, "carol")

	for _, followee := range []string{bob.ID, carol.ID} {
		require.NoError(t, st.Follows().CreateEdge(ctx, domain.FollowEdge{
			FollowerID: alice.ID,
			FolloweeID: followee,
			CreatedAt:  time.Now().UTC(),
		}))
	}

	ids, err := st.Follows().ListFolloweeIDs(ctx, alice.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{bob.ID, carol.ID}, ids)

	ids, err = st.Follows().ListFolloweeIDs(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}
