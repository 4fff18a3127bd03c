package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the service flags from args.
//
// Flags:
//
//	-a server address in format [host]:port
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "5m")
//	-demo-login username allowed to log in
//	-public-data-delay simulated work on /api/public-data
//	-log-level zerolog level name
//	-request-timeout request timeout (e.g., "30s")
//	-shutdown-timeout graceful shutdown timeout
//	-cors-origins comma separated list of allowed CORS origins
//	-cache-backend memory or lru
//	-cache-size lru capacity
//	-cache-coalesce enable single-flight on cache misses
//	-cache-report-interval cache stats worker interval
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-blog-api", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, demoLogin, logLevel string
	var tokenDuration, publicDataDelay time.Duration
	var requestTimeout, shutdownTimeout time.Duration
	var corsOrigins string
	var cacheBackend string
	var cacheSize int
	var cacheCoalesce bool
	var cacheReportInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 5m)")
	fs.StringVar(&demoLogin, "demo-login", "", "Username allowed to log in")
	fs.DurationVar(&publicDataDelay, "public-data-delay", 0, "Simulated work on /api/public-data")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.StringVar(&cacheBackend, "cache-backend", "", "Response cache backend: memory or lru")
	fs.IntVar(&cacheSize, "cache-size", 0, "Response cache capacity for the lru backend")
	fs.BoolVar(&cacheCoalesce, "cache-coalesce", false, "Coalesce concurrent cache misses per key")
	fs.DurationVar(&cacheReportInterval, "cache-report-interval", 0, "Cache stats report interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			DemoLogin:       demoLogin,
			PublicDataDelay: publicDataDelay,
			LogLevel:        logLevel,
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			ShutdownTimeout:    shutdownTimeout,
			CORSAllowedOrigins: splitList(corsOrigins),
		},
		Cache: Cache{
			Backend:  cacheBackend,
			Size:     cacheSize,
			Coalesce: cacheCoalesce,
		},
		Workers: Workers{
			CacheReportInterval: cacheReportInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces; otherwise it must be "localhost" or
// an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
