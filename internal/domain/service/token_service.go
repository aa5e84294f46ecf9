package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenPair is the result of a successful login or rotation: a short-lived
// stateless access token and a long-lived stateful refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Token type claim values. Stamped at mint time and checked at parse time,
// so a refresh token can never pass as an access token even if the two
// secrets were ever configured identically.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AccessClaims are the claims carried by an access token.
type AccessClaims struct {
	UserID    uuid.UUID `json:"uid"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName,omitempty"`
	TokenType string    `json:"type"`
	jwt.RegisteredClaims
}

// RefreshClaims are the claims carried by a refresh token. Deliberately
// minimal: identity id only.
type RefreshClaims struct {
	UserID    uuid.UUID `json:"uid"`
	TokenType string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and verifying the token pair.
// Access and refresh tokens are signed with distinct secrets and expiries.
type TokenService interface {
	// IssuePair mints a new access/refresh token pair bound to the given
	// identity snapshot. Pure with respect to the snapshot; the caller is
	// responsible for persisting the refresh token afterward.
	IssuePair(userID uuid.UUID, username, fullName string) (*TokenPair, error)

	// ParseAccessToken verifies signature and expiry against the access
	// secret and returns the claims.
	ParseAccessToken(token string) (*AccessClaims, error)

	// ParseRefreshToken verifies signature and expiry against the refresh
	// secret and returns the claims. An access token presented here fails.
	ParseRefreshToken(token string) (*RefreshClaims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
