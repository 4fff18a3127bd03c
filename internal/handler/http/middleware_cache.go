// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/pipeline"
	"github.com/MKhiriev/go-blog-api/models"
)

// cacheStatusHeader reports HIT or MISS on cached routes.
const cacheStatusHeader = "X-Cache"

// CacheKey derives the response cache key of a request: method, path and
// the query string with its pairs sorted by key, e.g.
// "GET /api/public-data?a=1&b=2". Headers never take part in the key. The
// same function serves lookups and stores.
//
// Pairs are taken verbatim from the raw query, so a pair that does not
// decode still distinguishes the key. Values of a repeated key keep their
// order.
func CacheKey(method string, u *url.URL) string {
	key := method + " " + u.Path
	if query := sortedRawQuery(u.RawQuery); query != "" {
		key += "?" + query
	}
	return key
}

func sortedRawQuery(rawQuery string) string {
	pairs := slices.DeleteFunc(strings.Split(rawQuery, "&"), func(pair string) bool {
		return pair == ""
	})
	slices.SortStableFunc(pairs, func(a, b string) int {
		return strings.Compare(queryPairKey(a), queryPairKey(b))
	})
	return strings.Join(pairs, "&")
}

func queryPairKey(pair string) string {
	key, _, _ := strings.Cut(pair, "=")
	return key
}

// cacheStage serves responses from the response cache. On a miss the rest
// of the pipeline writes into a captureWriter; its result is stored only
// when the handler returned no error.
func (h *Handler) cacheStage() pipeline.Stage {
	return pipeline.Stage{
		Kind: pipeline.KindCache,
		Name: "cache",
		Wrap: func(next pipeline.HandlerFunc) pipeline.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) error {
				key := CacheKey(r.Method, r.URL)

				resp, hit, err := h.services.CacheService.Serve(r.Context(), key, func(ctx context.Context) (models.CachedResponse, error) {
					cw := newCaptureWriter()
					if err := next(cw, r.WithContext(ctx)); err != nil {
						return models.CachedResponse{}, err
					}
					return cw.response(), nil
				})
				if err != nil {
					return err
				}

				writeCachedResponse(w, r, resp, hit)
				return nil
			}
		},
	}
}

func writeCachedResponse(w http.ResponseWriter, r *http.Request, resp models.CachedResponse, hit bool) {
	header := w.Header()
	for name, values := range resp.Header {
		header[name] = values
	}

	if hit {
		header.Set(cacheStatusHeader, "HIT")
	} else {
		header.Set(cacheStatusHeader, "MISS")
	}

	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("error writing cached response")
	}
}

// captureWriter buffers a whole response in memory.
type captureWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: make(http.Header)}
}

func (c *captureWriter) Header() http.Header {
	return c.header
}

func (c *captureWriter) WriteHeader(statusCode int) {
	if c.status != 0 {
		return
	}
	c.status = statusCode
}

func (c *captureWriter) Write(b []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	return c.body.Write(b)
}

func (c *captureWriter) response() models.CachedResponse {
	status := c.status
	if status == 0 {
		status = http.StatusOK
	}
	return models.CachedResponse{
		Status: status,
		Header: c.header.Clone(),
		Body:   bytes.Clone(c.body.Bytes()),
	}
}
