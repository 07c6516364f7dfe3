package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/mingle/internal/social/service"
	"github.com/aussiebroadwan/mingle/internal/social/store"
	"github.com/aussiebroadwan/mingle/pkg/httpx"
	"github.com/aussiebroadwan/mingle/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	tokenSecret  []byte
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store                  store.Store
	RelationshipService    *service.RelationshipService
	DirectoryService       *service.DirectoryService
	SuggestionService      *service.SuggestionService
	StatsService           *service.StatsService
	ProfileService         *service.ProfileService
	EngagementService      *service.EngagementService
	DefaultSuggestionCount int
}

func NewRouter(
	tokenSecret []byte,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		tokenSecret:  tokenSecret,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerFollows()
	r.registerDirectory()
	r.registerSuggestions()
	r.registerUsers()
	r.registerPosts()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerFollows() {
	h := &FollowHandler{Relationships: r.RelationshipService}

	// POST /users/{id}/follow - moderate rate limit by user (state mutation,
	// but double taps from flaky UIs are expected)
	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.tokenSecret),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/users/{id}/follow", secured)
}

func (r *Router) registerDirectory() {
	h := &DirectoryHandler{Directory: r.DirectoryService}

	// GET /directory - public browse/search; a token is accepted but not
	// required so anonymous visitors can still browse
	r.Mux.Handle("GET /v1/directory",
		httpx.Chain(http.HandlerFunc(h.HandleSearch),
			httpx.OptionalAuthnMiddleware(r.tokenSecret),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /directory/overview - cheap aggregate counters, high limit
	r.Mux.Handle("GET /v1/directory/overview",
		httpx.Chain(http.HandlerFunc(h.HandleOverview),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerSuggestions() {
	h := &SuggestionsHandler{
		Suggestions:  r.SuggestionService,
		DefaultCount: r.DefaultSuggestionCount,
	}

	// GET /suggestions - lenient rate limit by user (refresh buttons get mashed)
	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.tokenSecret),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	r.Mux.Handle("GET /v1/suggestions", secured)
}

func (r *Router) registerUsers() {
	usersHandler := &UsersHandler{Profiles: r.ProfileService}
	statsHandler := &StatsHandler{Stats: r.StatsService}

	// POST /users - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /users/{id}/stats - public profile data, high limit
	r.Mux.Handle("GET /v1/users/{id}/stats",
		httpx.Chain(statsHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerPosts() {
	h := &PostsHandler{Engagement: r.EngagementService}

	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.AuthnMiddleware(r.tokenSecret),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	securedLike := httpx.Chain(http.HandlerFunc(h.HandleLike),
		httpx.AuthnMiddleware(r.tokenSecret),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/posts", securedCreate)
	r.Mux.Handle("POST /v1/posts/{id}/like", securedLike)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
