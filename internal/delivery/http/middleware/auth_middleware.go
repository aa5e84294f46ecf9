package middleware

import (
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccessTokenCookie is the cookie carrying the access token for browser
// clients. Non-browser clients use the Authorization header instead.
const AccessTokenCookie = "accessToken"

// RefreshTokenCookie is the cookie carrying the refresh token.
const RefreshTokenCookie = "refreshToken"

// AuthMiddleware authenticates requests with the JWT access token. The token
// is read from the access token cookie first, then from a Bearer
// Authorization header. The subject is then loaded from the user store, so a
// token outliving its account stops working immediately. Every failure mode
// (missing token, malformed header, bad signature, expired token, deleted
// user) yields the same unauthorized response.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.resolveUser(c)
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// OptionalAuthenticate resolves the requester identity when a valid access
// token is present but lets anonymous requests through. Used on public
// routes whose responses vary for the owner (draft visibility, subscription
// state, watch history recording).
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if user, err := m.resolveUser(c); err == nil {
			deliverycontext.SetUser(c, user)
		}

		return next(c)
	}
}

// resolveUser extracts and verifies the access token, then loads the subject
// from the store. A valid token whose user no longer exists is rejected.
func (m *AuthMiddleware) resolveUser(c echo.Context) (*entity.User, error) {
	tokenString := extractToken(c)
	if tokenString == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	claims, err := m.tokenSvc.ParseAccessToken(tokenString)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "access token rejected")
	}

	user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user.Sanitized(), nil
}

// extractToken prefers the cookie over the Authorization header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}
