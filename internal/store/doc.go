// Package store holds the storage layer: the response cache backends and the
// identity repository used by header authentication.
//
// Two cache backends exist. The memory backend is the default and is
// deliberately unbounded with no expiry. The lru backend, built on
// hashicorp/golang-lru, bounds the entry count and is only used when
// configured.
package store
