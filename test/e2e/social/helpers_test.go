package social_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/mingle/internal/social/domain"
	httpapi "github.com/aussiebroadwan/mingle/internal/social/http"
	"github.com/aussiebroadwan/mingle/internal/social/service"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/aussiebroadwan/mingle/internal/social/store/drivers/sqlite"
	"github.com/aussiebroadwan/mingle/pkg/idx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
	"github.com/aussiebroadwan/mingle/pkg/socialsdk"
)

/*
 * Common helpers for social service end-to-end tests. The full HTTP stack
 * (middleware, router, handlers, services, sqlite) runs in-process against an
 * in-memory database, with real HS256 tokens minted per test actor.
 */

const tokenSecret = "e2e-test-secret-0123456789abcdef"

// testEnv bundles the running server with direct store access for seeding.
type testEnv struct {
	Server *httptest.Server
	Store  store.Store
}

// setupServer starts the full HTTP stack and returns it with a cleanup hook
// registered on t.
func setupServer(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slogx.New(slogx.Config{
		Service: "social-service",
		Version: "e2e",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	router := httpapi.NewRouter([]byte(tokenSecret), "e2e", st, logger)
	router.RelationshipService = &service.RelationshipService{Store: st}
	router.DirectoryService = &service.DirectoryService{Store: st}
	router.SuggestionService = &service.SuggestionService{Store: st}
	router.StatsService = &service.StatsService{Store: st}
	router.ProfileService = &service.ProfileService{Store: st}
	router.EngagementService = &service.EngagementService{Store: st}
	router.DefaultSuggestionCount = 5
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{Server: server, Store: st}
}

// mintToken signs an HS256 bearer token for the given actor.
func mintToken(t *testing.T, userID string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tokenSecret))
	require.NoError(t, err)
	return raw
}

// clientFor returns an SDK client authenticated as the given user, or
// anonymous when userID is empty.
func (env *testEnv) clientFor(t *testing.T, userID string) *socialsdk.Client {
	t.Helper()

	token := ""
	if userID != "" {
		token = mintToken(t, userID)
	}
	return socialsdk.NewClient(env.Server.URL, token)
}

// seedUser inserts a profile directly, bypassing the registration endpoint
// and its strict rate limit.
func (env *testEnv) seedUser(t *testing.T, username string) domain.User {
	t.Helper()

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		DisplayName:  username,
		JoinedAt:     now,
		LastActiveAt: now,
	}
	require.NoError(t, env.Store.Users().CreateUser(context.Background(), u))
	return u
}

// requireAPIError asserts err is an APIError with the given status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *socialsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}
