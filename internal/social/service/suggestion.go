package service

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
)

// SuggestionService proposes accounts the actor does not follow yet.
// Sampling is uniform over the eligible pool at call time; weighting by
// mutual follows or recency is a product decision we have deliberately not
// taken, so keep the distribution honest until someone asks for bias.
type SuggestionService struct {
	Store store.Store

	// Rand is the randomness source. Leave nil for the shared seeded
	// generator; inject a fixed-seed source in tests.
	Rand *rand.Rand
}

func (s *SuggestionService) intN(n int) int {
	if s.Rand != nil {
		return s.Rand.IntN(n)
	}
	return rand.IntN(n)
}

// Sample draws up to count distinct accounts from the eligible pool: every
// user minus the actor minus everyone the actor already follows. When the
// pool is smaller than count the whole pool comes back, without error or
// padding. Sampling reads the pool once and mutates nothing.
func (s *SuggestionService) Sample(ctx context.Context, actorID string, count int) ([]domain.DirectorySummary, error) {
	log := slogx.FromContext(ctx)

	if actorID == "" {
		return nil, ErrAuthenticationRequired
	}
	if count < 0 {
		return nil, ErrValidation
	}
	if count == 0 {
		return nil, nil
	}

	pool, err := s.Store.Users().ListUserIDsExcluding(ctx, actorID)
	if err != nil {
		log.Error("failed to load suggestion pool", slog.String("actor_id", actorID), slog.Any("error", err))
		return nil, ErrStorageUnavailable
	}
	if len(pool) == 0 {
		return nil, nil
	}

	// Partial Fisher-Yates: after i swaps the first i elements are a uniform
	// sample without replacement.
	n := min(count, len(pool))
	for i := range n {
		j := i + s.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	picked := pool[:n]

	users, err := s.Store.Users().GetDirectoryUsersByID(ctx, picked)
	if err != nil {
		log.Error("failed to enrich suggestions", slog.Any("error", err))
		return nil, ErrStorageUnavailable
	}

	// Preserve the sampled order; a user deleted between the two queries is
	// simply skipped.
	byID := make(map[string]domain.DirectoryUser, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]domain.DirectorySummary, 0, len(picked))
	for _, id := range picked {
		u, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, domain.DirectorySummary{
			User:          u.User,
			FollowerCount: u.FollowerCount,
		})
	}
	return out, nil
}
