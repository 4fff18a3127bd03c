package handler

import (
	"testing"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, address string) (*Handlers, error) {
	t.Helper()

	registry := prometheus.NewRegistry()
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: address}}

	// the http handler only stores the services pointer during construction
	return NewHandlers(&service.Services{}, metrics.New(registry), registry, cfg, logger.Nop())
}

func TestNewHandlers_HTTP(t *testing.T) {
	h, err := newTestHandlers(t, ":3000")

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := newTestHandlers(t, "")

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	h1, err1 := newTestHandlers(t, ":3000")
	h2, err2 := newTestHandlers(t, ":3000")

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
