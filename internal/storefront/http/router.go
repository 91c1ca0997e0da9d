package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openmercato/storefront/internal/storefront/domain"
	"github.com/openmercato/storefront/internal/storefront/service"
	"github.com/openmercato/storefront/internal/storefront/store"
	"github.com/openmercato/storefront/pkg/httpx"
	"github.com/openmercato/storefront/pkg/jwtx"
	"github.com/openmercato/storefront/pkg/slogx"

	_ "github.com/openmercato/storefront/api/docs" // Swagger docs
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
	AdminService   *service.AdminService
	UserService    *service.UserService
	ProductService *service.ProductService
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
	r.registerAdmin()
	r.registerUsers()
	r.registerProducts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Storefront API
//	@version		0.1.0
//	@description	E-commerce backend with separate admin and customer account namespaces.
//	@description
//	@description				Signup and login return a bearer token (HS256 JWT) already prefixed with
//	@description				the "Bearer " scheme, ready to use as an Authorization header value.
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}

	// POST /admin/signup - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /admin/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /admin/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /admin/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /admin/profile - authenticated, lenient limit by subject
	r.Mux.Handle("GET /admin/profile",
		httpx.Chain(http.HandlerFunc(h.HandleProfile),
			httpx.RequireAuth(r.verifier, string(domain.UserTypeAdmin)),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	// Moderation endpoints - admin token required, moderate limit by subject
	r.Mux.Handle("POST /admin/users/{id}/ban",
		httpx.Chain(http.HandlerFunc(h.HandleBanUser),
			httpx.RequireAuth(r.verifier, string(domain.UserTypeAdmin)),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /admin/users/{id}/ban",
		httpx.Chain(http.HandlerFunc(h.HandleUnbanUser),
			httpx.RequireAuth(r.verifier, string(domain.UserTypeAdmin)),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	// POST /user/signup - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /user/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /user/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /user/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /user/profile - authenticated, lenient limit by subject
	r.Mux.Handle("GET /user/profile",
		httpx.Chain(http.HandlerFunc(h.HandleProfile),
			httpx.RequireAuth(r.verifier, string(domain.UserTypeUser)),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	// POST /user/change-password - strict limit by subject (password guesses)
	r.Mux.Handle("POST /user/change-password",
		httpx.Chain(http.HandlerFunc(h.HandleChangePassword),
			httpx.RequireAuth(r.verifier, string(domain.UserTypeUser)),
			httpx.RateLimitBySubject(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}

	// POST /products - admin token required, moderate limit by subject
	r.Mux.Handle("POST /products",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RequireAuth(r.verifier, string(domain.UserTypeAdmin)),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)

	// GET /products - public catalog, high limit
	r.Mux.Handle("GET /products",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
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
