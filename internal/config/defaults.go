package config

import "time"

// defaultConfig returns the values used for every field no other source set.
// TokenSignKey is deliberately absent: the signing secret must be supplied.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     "go-blog-api",
			TokenDuration:   5 * time.Minute,
			DemoLogin:       "admin",
			PublicDataDelay: time.Second,
			LogLevel:        "debug",
			Version:         "N/A",
		},
		Server: Server{
			HTTPAddress:     "localhost:3000",
			ShutdownTimeout: 10 * time.Second,
		},
		Cache: Cache{
			Backend: CacheBackendMemory,
			Size:    1024,
		},
	}
}
