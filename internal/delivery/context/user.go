package context

import (
	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SetUser attaches the sanitized authenticated user to echo.Context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser extracts the authenticated user from echo.Context.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

// GetUserID extracts the authenticated user's ID from echo.Context.
// Returns uuid.Nil when the request is anonymous.
func GetUserID(c echo.Context) uuid.UUID {
	if user, ok := GetUser(c); ok {
		return user.ID
	}

	return uuid.Nil
}
