package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/metrics"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCacheSvc(t *testing.T, coalesce bool) (*cacheService, *metrics.Metrics) {
	t.Helper()
	m := metrics.NewNop()
	svc := NewCacheService(store.NewMemoryResponseCache(logger.Nop()), config.Cache{Coalesce: coalesce}, m, logger.Nop())
	return svc.(*cacheService), m
}

func okResponse(body string) models.CachedResponse {
	return models.CachedResponse{
		Status: http.StatusOK,
		Header: http.Header{"Content-Type": {"application/json"}},
		Body:   []byte(body),
	}
}

// countingProducer returns a ProduceFunc that counts its invocations.
func countingProducer(calls *atomic.Int32, resp models.CachedResponse, err error) ProduceFunc {
	return func(context.Context) (models.CachedResponse, error) {
		calls.Add(1)
		return resp, err
	}
}

func TestCacheService_MissThenHit(t *testing.T) {
	svc, m := newTestCacheSvc(t, false)
	ctx := context.Background()
	var calls atomic.Int32
	produce := countingProducer(&calls, okResponse(`{"n":1}`), nil)

	first, hit, err := svc.Serve(ctx, "GET /api/public-data", produce)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := svc.Serve(ctx, "GET /api/public-data", produce)
	require.NoError(t, err)
	assert.True(t, hit)

	assert.Equal(t, int32(1), calls.Load(), "producer must not run on a hit")
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, 1, svc.Len())

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheMisses))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheStores))
}

func TestCacheService_ErrorsAreNotCached(t *testing.T) {
	svc, m := newTestCacheSvc(t, false)
	ctx := context.Background()
	boom := errors.New("handler failed")
	var calls atomic.Int32

	_, hit, err := svc.Serve(ctx, "k", countingProducer(&calls, models.CachedResponse{}, boom))
	assert.ErrorIs(t, err, boom)
	assert.False(t, hit)
	assert.Equal(t, 0, svc.Len())

	// the next request misses again and its success is stored
	_, hit, err = svc.Serve(ctx, "k", countingProducer(&calls, okResponse("ok"), nil))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 1, svc.Len())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheStores))
}

func TestCacheService_NonSuccessStatusNotCached(t *testing.T) {
	svc, _ := newTestCacheSvc(t, false)
	ctx := context.Background()

	for _, status := range []int{http.StatusMovedPermanently, http.StatusNotFound, http.StatusInternalServerError} {
		resp := okResponse("x")
		resp.Status = status

		got, hit, err := svc.Serve(ctx, "k", func(context.Context) (models.CachedResponse, error) { return resp, nil })
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, status, got.Status)
	}

	assert.Equal(t, 0, svc.Len())
}

func TestCacheService_ReturnedCopyIndependentOfStored(t *testing.T) {
	svc, _ := newTestCacheSvc(t, false)
	ctx := context.Background()

	first, _, err := svc.Serve(ctx, "k", func(context.Context) (models.CachedResponse, error) {
		return okResponse("original"), nil
	})
	require.NoError(t, err)

	// mutating the response handed to the first client must not reach the cache
	copy(first.Body, "XXXXXXXX")
	first.Header.Set("Content-Type", "text/plain")

	second, hit, err := svc.Serve(ctx, "k", nil)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, []byte("original"), second.Body)
	assert.Equal(t, "application/json", second.Header.Get("Content-Type"))
}

func TestCacheService_StoredAtStamped(t *testing.T) {
	svc, _ := newTestCacheSvc(t, false)
	stamp := time.Date(2026, 5, 5, 5, 5, 5, 0, time.UTC)
	svc.now = func() time.Time { return stamp }

	_, _, err := svc.Serve(context.Background(), "k", func(context.Context) (models.CachedResponse, error) {
		return okResponse("x"), nil
	})
	require.NoError(t, err)

	got, hit, _ := svc.Serve(context.Background(), "k", nil)
	require.True(t, hit)
	assert.Equal(t, stamp, got.StoredAt)
}

func TestCacheService_StoreFailureStillServes(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mock.NewMockResponseCache(ctrl)
	m := metrics.NewNop()
	svc := NewCacheService(cache, config.Cache{}, m, logger.Nop())

	cache.EXPECT().Lookup(gomock.Any(), "k").Return(models.CachedResponse{}, false)
	cache.EXPECT().Store(gomock.Any(), "k", gomock.Any()).Return(store.ErrEmptyCacheKey)

	got, hit, err := svc.Serve(context.Background(), "k", func(context.Context) (models.CachedResponse, error) {
		return okResponse("x"), nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []byte("x"), got.Body)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.CacheStores))
}

// TestCacheService_ConcurrentMissesWithoutCoalescing documents the default
// behavior: concurrent misses on one key each run the producer.
func TestCacheService_ConcurrentMissesWithoutCoalescing(t *testing.T) {
	svc, _ := newTestCacheSvc(t, false)
	const n = 4

	var calls atomic.Int32
	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(n)

	produce := func(context.Context) (models.CachedResponse, error) {
		calls.Add(1)
		started.Done()
		<-release
		return okResponse("x"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.Serve(context.Background(), "k", produce)
			assert.NoError(t, err)
		}()
	}

	started.Wait()
	close(release)
	wg.Wait()

	assert.Equal(t, int32(n), calls.Load())
	assert.Equal(t, 1, svc.Len())
}

func TestCacheService_CoalescedMisses(t *testing.T) {
	svc, _ := newTestCacheSvc(t, true)
	const n = 8

	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	produce := func(context.Context) (models.CachedResponse, error) {
		if calls.Add(1) == 1 {
			close(entered)
		}
		<-release
		return okResponse("shared"), nil
	}

	results := make([]models.CachedResponse, n)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _, _ = svc.Serve(context.Background(), "k", produce)
	}()
	<-entered

	for i := 1; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _, _ = svc.Serve(context.Background(), "k", produce)
		}(i)
	}

	// give followers time to join the in-flight call
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := range results {
		assert.Equal(t, []byte("shared"), results[i].Body)
	}

	// every waiter owns its copy
	results[0].Body[0] = 'X'
	assert.Equal(t, []byte("shared"), results[1].Body)
}

func TestCacheService_CoalescedErrorNotCached(t *testing.T) {
	svc, _ := newTestCacheSvc(t, true)
	boom := errors.New("boom")

	_, _, err := svc.Serve(context.Background(), "k", func(context.Context) (models.CachedResponse, error) {
		return models.CachedResponse{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, svc.Len())
}
