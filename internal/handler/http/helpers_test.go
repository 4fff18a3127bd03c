package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-sign-key"

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type mockAuthService struct {
	loginFn      func(ctx context.Context, username string) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, username string) (models.Token, error) {
	return m.loginFn(ctx, username)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockIdentityService struct {
	authenticateFn func(ctx context.Context, userID string) (models.Principal, error)
}

func (m *mockIdentityService) Authenticate(ctx context.Context, userID string) (models.Principal, error) {
	return m.authenticateFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Handler construction
// ─────────────────────────────────────────────

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			TokenSignKey:    testSignKey,
			TokenIssuer:     "go-blog-api",
			TokenDuration:   5 * time.Minute,
			DemoLogin:       "admin",
			PublicDataDelay: 50 * time.Millisecond,
		},
		Cache: config.Cache{Backend: config.CacheBackendMemory},
	}
}

type testEnv struct {
	handler  *Handler
	router   http.Handler
	services *service.Services
	metrics  *metrics.Metrics
	registry *prometheus.Registry
}

// newTestEnv wires a Handler to the real services, in-memory storages and a
// private metrics registry. mutate may replace services before the router
// is built.
func newTestEnv(t *testing.T, cfg *config.StructuredConfig, mutate func(*service.Services)) *testEnv {
	t.Helper()

	log := logger.Nop()
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	storages, err := store.NewStorages(cfg.Cache, log)
	require.NoError(t, err)

	services := service.NewServices(storages, cfg, m, log)
	if mutate != nil {
		mutate(services)
	}

	userValidator, err := validators.NewUserValidator()
	require.NoError(t, err)

	h := NewHandler(services, userValidator, m, registry, cfg, log)
	return &testEnv{
		handler:  h,
		router:   h.Init(),
		services: services,
		metrics:  m,
		registry: registry,
	}
}

func (e *testEnv) do(t *testing.T, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for name, values := range header {
		req.Header[name] = values
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp
}

// countingHandler is a pipeline handler that counts its invocations.
type countingHandler struct {
	calls atomic.Int32
	fn    func(w http.ResponseWriter, r *http.Request) error
}

func (c *countingHandler) serve(w http.ResponseWriter, r *http.Request) error {
	c.calls.Add(1)
	return c.fn(w, r)
}
