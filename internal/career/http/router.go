package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pathfinderai/pathfinder/internal/career/service"
	"github.com/pathfinderai/pathfinder/internal/career/store"
	"github.com/pathfinderai/pathfinder/pkg/httpx"
	"github.com/pathfinderai/pathfinder/pkg/jwtx"
	"github.com/pathfinderai/pathfinder/pkg/slogx"

	_ "github.com/pathfinderai/pathfinder/api/career" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	ProfileService *service.ProfileService
	AdvisorService *service.AdvisorService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
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
	r.registerAuth()
	r.registerProfile()
	r.registerAdvisor()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			PathFinder AI API
//	@version		0.1.0
//	@description	Career guidance service: account management, academic profile
//	@description	storage, and AI-generated career recommendations.
//	@description
//	@description				Session tokens are HS256-signed JWTs valid for 24 hours.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /signup - strict rate limit by IP (public account creation)
	signupHandler := &SignupHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /signup",
		httpx.Chain(signupHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (credential guessing surface)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProfile() {
	h := &SaveDetailsHandler{ProfileService: r.ProfileService}

	// POST /save-details - authenticated, moderate rate limit by user
	secured := httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /save-details", secured)
}

func (r *Router) registerAdvisor() {
	recommendHandler := &RecommendHandler{AdvisorService: r.AdvisorService}
	liveSearchHandler := &LiveSearchHandler{AdvisorService: r.AdvisorService}

	// Both endpoints proxy to the paid generation API, so they get the
	// moderate per-user limit on top of authentication.
	r.Mux.Handle("POST /recommend",
		httpx.Chain(recommendHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /live-search",
		httpx.Chain(liveSearchHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
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
