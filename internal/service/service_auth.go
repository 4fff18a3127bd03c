package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role carried by every issued credential.
const RoleAdmin = "admin"

// authService is the concrete implementation of AuthService.
// It issues HS256 tokens for the demo subject and verifies them statelessly:
// validity depends only on the signature and the expiry claim.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// demoLogin is the only subject for which Login succeeds.
	demoLogin string

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return newAuthService(cfg, time.Now, logger)
}

// NewAuthServiceWithClock is NewAuthService with an injected clock used for
// both issuing and verifying tokens.
func NewAuthServiceWithClock(cfg config.App, now func() time.Time, logger *logger.Logger) AuthService {
	return newAuthService(cfg, now, logger)
}

func newAuthService(cfg config.App, now func() time.Time, logger *logger.Logger) *authService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		demoLogin:     cfg.DemoLogin,
		ids:           utils.NewUUIDGenerator(),
		now:           now,
		logger:        logger,
	}
}

// Login issues a token for username.
//
// Only the configured demo subject gets a token; this is demo behavior, not
// a general authentication policy. The token carries role "admin" and
// expires tokenDuration after issuance.
func (a *authService) Login(ctx context.Context, username string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || username != a.demoLogin {
		log.Warn().Str("username", username).Msg("login rejected")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   a.tokenIssuer,
		Subject:  username,
		Role:     RoleAdmin,
		ID:       a.ids.Generate(),
		IssuedAt: a.now(),
		Duration: a.tokenDuration,
		SignKey:  a.tokenSignKey,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Debug().Str("sub", username).Str("jti", token.Claims.ID).Msg("token issued")
	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens (now >= exp) yield ErrTokenExpired. Every other failure,
// including a signature mismatch, a wrong issuer or malformed input, yields
// ErrInvalidSignature.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrInvalidSignature
	}

	return token, nil
}
