package models

import (
	"bytes"
	"net/http"
	"time"
)

// CachedResponse is a memoized HTTP response kept by the response cache.
//
// Values handed to or returned from a cache store are always independent
// copies (see [CachedResponse.Clone]); no two holders share a body buffer or
// header map.
type CachedResponse struct {
	// Status is the HTTP status code of the original response.
	Status int

	// Header holds the response headers written by the handler.
	Header http.Header

	// Body is the complete response body.
	Body []byte

	// StoredAt is the moment the entry was put into the cache.
	StoredAt time.Time
}

// Clone returns a deep copy of the response.
func (c CachedResponse) Clone() CachedResponse {
	return CachedResponse{
		Status:   c.Status,
		Header:   c.Header.Clone(),
		Body:     bytes.Clone(c.Body),
		StoredAt: c.StoredAt,
	}
}
