package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/internal/linkbio/store"
	"github.com/veerabala/linkbio/pkg/httpx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	AuthService     *service.AuthService
	LinkService     *service.LinkService
	SettingsService *service.SettingsService
	ProfileService  *service.ProfileService
	ProductService  *service.ProductService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
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
	r.registerLinks()
	r.registerSettings()
	r.registerProfiles()
	r.registerProducts()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// resolve adapts AuthService.Resolve to the middleware's principal shape.
func (r *Router) resolve() httpx.ResolveFunc {
	return func(ctx context.Context, token string) (httpx.Principal, error) {
		identity, err := r.AuthService.Resolve(ctx, token)
		if err != nil {
			return nil, err
		}
		return identity, nil
	}
}

func (r *Router) registerAuth() {
	// GET / - greeting probe, public limit
	r.Mux.Handle("GET /{$}",
		httpx.Chain(RootHandler(),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST /register - strict rate limit by IP (account creation)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /token - strict rate limit by IP + username form field to
	// prevent brute force against a single account
	tokenHandler := &TokenHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIPAndFormField(httpx.StrictLimit, "username"),
		),
	)

	// GET /users/me - authenticated read, lenient limit by user
	meHandler := &MeHandler{}
	r.Mux.Handle("GET /users/me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.resolve()),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerLinks() {
	h := &LinksHandler{LinkService: r.LinkService}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.AuthnMiddleware(r.resolve()),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.AuthnMiddleware(r.resolve()),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedUpdate := httpx.Chain(http.HandlerFunc(h.HandleUpdate),
		httpx.AuthnMiddleware(r.resolve()),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
	securedDelete := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.AuthnMiddleware(r.resolve()),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /links", securedList)
	r.Mux.Handle("POST /links", securedCreate)
	r.Mux.Handle("PUT /links/{id}", securedUpdate)
	r.Mux.Handle("DELETE /links/{id}", securedDelete)
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{SettingsService: r.SettingsService}

	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.AuthnMiddleware(r.resolve()),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedPatch := httpx.Chain(http.HandlerFunc(h.HandlePatch),
		httpx.AuthnMiddleware(r.resolve()),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /settings/me", securedGet)
	r.Mux.Handle("PATCH /settings/me", securedPatch)

	// Public, unauthenticated settings view used on profile pages
	r.Mux.Handle("GET /setting/{username}",
		httpx.Chain(http.HandlerFunc(h.HandlePublicGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerProfiles() {
	h := &ProfileHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /profile/{username}",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{ProductService: r.ProductService}

	// Legacy catalog routes kept for existing clients. The list route is
	// plural but every other route is singular; clients depend on that.
	r.Mux.Handle("GET /products",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /product",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /product/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("PUT /product/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /product/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems
	// may poll frequently)
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
