package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSampleExcludesActorAndFollowed(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &SuggestionService{Store: st}
	rels := &RelationshipService{Store: st}
	ctx := context.Background()

	now := time.Now().UTC()
	alice := seedUser(t, st, "alice", now)
	bob := seedUser(t, st, "bob", now)
	carol := seedUser(t, st, "carol", now)
	dave := seedUser(t, st, "dave", now)

	_, err := rels.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	out, err := svc.Sample(ctx, alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, out, 2)

	got := map[string]bool{}
	for _, s := range out {
		got[s.ID] = true
	}
	require.True(t, got[carol.ID])
	require.True(t, got[dave.ID])
	require.False(t, got[alice.ID])
	require.False(t, got[bob.ID])
}

func TestSampleSmallPool(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &SuggestionService{Store: st}
	ctx := context.Background()

	now := time.Now().UTC()
	alice := seedUser(t, st, "alice", now)
	seedUser(t, st, "bob", now)

	// Pool smaller than count returns the whole pool, no padding, no error.
	out, err := svc.Sample(ctx, alice.ID, 5)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "bob", out[0].Username)
}

func TestSampleEmptyPool(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &SuggestionService{Store: st}
	ctx := context.Background()

	alice := seedUser(t, st, "alice", time.Now().UTC())

	out, err := svc.Sample(ctx, alice.ID, 5)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestSampleValidation(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &SuggestionService{Store: st}
	ctx := context.Background()

	alice := seedUser(t, st, "alice", time.Now().UTC())

	_, err := svc.Sample(ctx, "", 5)
	require.ErrorIs(t, err, ErrAuthenticationRequired)

	_, err = svc.Sample(ctx, alice.ID, -1)
	require.ErrorIs(t, err, ErrValidation)

	out, err := svc.Sample(ctx, alice.ID, 0)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestSampleNoDuplicates(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	svc := &SuggestionService{
		Store: st,
		Rand:  rand.New(rand.NewPCG(42, 0)),
	}
	ctx := context.Background()

	now := time.Now().UTC()
	alice := seedUser(t, st, "alice", now)
	for _, name := range []string{"bob", "carol", "dave", "erin", "frank", "grace"} {
		seedUser(t, st, name, now)
	}

	for range 20 {
		out, err := svc.Sample(ctx, alice.ID, 3)
		require.NoError(t, err)
		require.Len(t, out, 3)

		seen := map[string]bool{}
		for _, s := range out {
			require.False(t, seen[s.ID], "duplicate suggestion %s", s.Username)
			seen[s.ID] = true
		}
	}
}

func TestSampleSeededDeterminism(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	alice := seedUser(t, st, "alice", now)
	for _, name := range []string{"bob", "carol", "dave", "erin", "frank"} {
		seedUser(t, st, name, now)
	}

	draw := func() []string {
		svc := &SuggestionService{
			Store: st,
			Rand:  rand.New(rand.NewPCG(7, 7)),
		}
		out, err := svc.Sample(ctx, alice.ID, 3)
		require.NoError(t, err)

		names := make([]string, 0, len(out))
		for _, s := range out {
			names = append(names, s.Username)
		}
		return names
	}

	require.Equal(t, draw(), draw())
}
