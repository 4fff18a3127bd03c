package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/pipeline"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router. Every route is bound here, once, to its pipeline;
// an invalid stage declaration panics at startup.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	if len(h.corsAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.corsAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", userIDHeader, traceIDHeader},
			ExposedHeaders: []string{authorizationHeader, traceIDHeader, cacheStatusHeader},
			MaxAge:         300,
		}))
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	var (
		plain          = pipeline.MustNew()
		cached         = pipeline.MustNew(h.cacheStage())
		tokenProtected = pipeline.MustNew(h.bearerIdentityStage())
		adminOnly      = pipeline.MustNew(h.headerIdentityStage(), h.requireRole(service.RoleAdmin))
	)

	router.Method(http.MethodGet, "/", h.boundary(plain.Then(h.root)))

	router.Method(http.MethodGet, "/posts/", h.boundary(plain.Then(h.listPosts)))
	router.Method(http.MethodPost, "/posts/", h.boundary(plain.Then(h.createPost)))
	router.Method(http.MethodGet, "/posts/{id}", h.boundary(plain.Then(h.getPost)))

	router.Method(http.MethodGet, "/authors/", h.boundary(plain.Then(h.listAuthors)))
	router.Method(http.MethodGet, "/authors/{id}", h.boundary(plain.Then(h.getAuthor)))

	router.Method(http.MethodPost, "/login", h.boundary(plain.Then(h.login)))
	router.Method(http.MethodGet, "/api/protected", h.boundary(tokenProtected.Then(h.protected)))
	router.Method(http.MethodGet, "/api/public-data", h.boundary(cached.Then(h.publicData)))
	router.Method(http.MethodGet, "/admin/dashboard", h.boundary(adminOnly.Then(h.adminDashboard)))

	router.Method(http.MethodPost, "/users", h.boundary(plain.Then(h.withValidatedUser(h.createUser))))

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(appendTrailingSlash(router))

	return router
}
