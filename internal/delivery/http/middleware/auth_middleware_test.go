package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockService "vidtube/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authTestFixtures struct {
	tokenSvc *mockService.MockTokenService
	userRepo *mockRepo.MockUserRepository
	mw       *AuthMiddleware
}

func newAuthTestContext(t *testing.T) (authTestFixtures, echo.Context) {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mw := NewAuthMiddleware(tokenSvc, userRepo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return authTestFixtures{tokenSvc: tokenSvc, userRepo: userRepo, mw: mw}, c
}

func passthroughHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate_BearerToken(t *testing.T) {
	fx, c := newAuthTestContext(t)

	userID := uuid.New()
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer valid-token")
	fx.tokenSvc.EXPECT().ParseAccessToken("valid-token").Return(&service.AccessClaims{
		UserID:   userID,
		Username: "alice",
		FullName: "Alice Example",
	}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:           userID,
		Username:     "alice",
		FullName:     "Alice Example",
		PasswordHash: "hashed_password",
		RefreshToken: "stored-refresh",
	}, nil)

	called := false
	err := fx.mw.Authenticate(passthroughHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)

	user, ok := deliverycontext.GetUser(c)
	require.True(t, ok)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)
	assert.Empty(t, user.RefreshToken)
}

func TestAuthMiddleware_Authenticate_CookieBeatsHeader(t *testing.T) {
	fx, c := newAuthTestContext(t)

	userID := uuid.New()
	c.Request().AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	fx.tokenSvc.EXPECT().ParseAccessToken("cookie-token").Return(&service.AccessClaims{
		UserID:   userID,
		Username: "alice",
	}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Username: "alice"}, nil)

	called := false
	err := fx.mw.Authenticate(passthroughHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	fx, c := newAuthTestContext(t)

	called := false
	err := fx.mw.Authenticate(passthroughHandler(&called))(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_MalformedHeader(t *testing.T) {
	fx, c := newAuthTestContext(t)

	c.Request().Header.Set(echo.HeaderAuthorization, "Token abc")

	called := false
	err := fx.mw.Authenticate(passthroughHandler(&called))(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_RejectedToken(t *testing.T) {
	fx, c := newAuthTestContext(t)

	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer expired-token")
	fx.tokenSvc.EXPECT().ParseAccessToken("expired-token").Return(nil, errors.New("token is expired"))

	called := false
	err := fx.mw.Authenticate(passthroughHandler(&called))(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_DeletedUser(t *testing.T) {
	// A still-unexpired token whose account is gone must not authenticate.
	fx, c := newAuthTestContext(t)

	userID := uuid.New()
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer orphaned-token")
	fx.tokenSvc.EXPECT().ParseAccessToken("orphaned-token").Return(&service.AccessClaims{
		UserID:   userID,
		Username: "ghost",
	}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	called := false
	err := fx.mw.Authenticate(passthroughHandler(&called))(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.False(t, called)

	_, ok := deliverycontext.GetUser(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_UniformRejection(t *testing.T) {
	// The failure modes must be indistinguishable to the client.
	fx, _ := newAuthTestContext(t)

	ghostID := uuid.New()
	fx.tokenSvc.EXPECT().ParseAccessToken("garbage").Return(nil, errors.New("invalid signature")).Maybe()
	fx.tokenSvc.EXPECT().ParseAccessToken("orphaned").Return(&service.AccessClaims{UserID: ghostID}, nil).Maybe()
	fx.userRepo.EXPECT().FindByID(mock.Anything, ghostID).Return(nil, repository.ErrUserNotFound).Maybe()

	e := echo.New()

	cases := []struct {
		name  string
		setup func(req *http.Request)
	}{
		{name: "no credentials", setup: func(_ *http.Request) {}},
		{name: "malformed header", setup: func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "garbage")
		}},
		{name: "rejected token", setup: func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
		}},
		{name: "deleted user", setup: func(req *http.Request) {
			req.Header.Set(echo.HeaderAuthorization, "Bearer orphaned")
		}},
	}

	var appErrs []domainerrors.AppError

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		tc.setup(req)
		c := e.NewContext(req, httptest.NewRecorder())

		called := false
		err := fx.mw.Authenticate(passthroughHandler(&called))(c)
		require.Error(t, err, tc.name)
		assert.False(t, called, tc.name)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr), tc.name)
		appErrs = append(appErrs, appErr)
	}

	for _, appErr := range appErrs[1:] {
		assert.Equal(t, appErrs[0].HTTPCode(), appErr.HTTPCode())
		assert.Equal(t, appErrs[0].ErrorCode(), appErr.ErrorCode())
		assert.Equal(t, appErrs[0].Message(), appErr.Message())
	}
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	fx, c := newAuthTestContext(t)

	called := false
	err := fx.mw.OptionalAuthenticate(passthroughHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)

	_, ok := deliverycontext.GetUser(c)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, deliverycontext.GetUserID(c))
}

func TestAuthMiddleware_OptionalAuthenticate_WithToken(t *testing.T) {
	fx, c := newAuthTestContext(t)

	userID := uuid.New()
	c.Request().AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "valid-token"})
	fx.tokenSvc.EXPECT().ParseAccessToken("valid-token").Return(&service.AccessClaims{
		UserID:   userID,
		Username: "alice",
	}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID, Username: "alice"}, nil)

	called := false
	err := fx.mw.OptionalAuthenticate(passthroughHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, userID, deliverycontext.GetUserID(c))
}

func TestAuthMiddleware_OptionalAuthenticate_DeletedUserAnonymous(t *testing.T) {
	fx, c := newAuthTestContext(t)

	userID := uuid.New()
	c.Request().AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "orphaned-token"})
	fx.tokenSvc.EXPECT().ParseAccessToken("orphaned-token").Return(&service.AccessClaims{
		UserID: userID,
	}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	called := false
	err := fx.mw.OptionalAuthenticate(passthroughHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, uuid.Nil, deliverycontext.GetUserID(c))
}
