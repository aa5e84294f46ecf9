package handler

import (
	"context"
	"log/slog"
	"net/http"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/delivery/http/middleware"
	"vidtube/internal/delivery/http/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

type registerRequest struct {
	Username string `form:"username" json:"username" validate:"required,min=3,max=100"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	FullName string `form:"fullName" json:"fullName"`
	Password string `form:"password" json:"password" validate:"required,min=8"`
}

// RegisterUser handles the user registration request. Avatar and cover image
// are optional multipart file fields.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	}

	avatar, closeAvatar, err := formUpload(c, "avatar")
	if err != nil {
		return err
	}
	defer closeAvatar()
	input.Avatar = avatar

	cover, closeCover, err := formUpload(c, "coverImage")
	if err != nil {
		return err
	}
	defer closeCover()
	input.Cover = cover

	output, err := h.uc.RegisterUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

type loginRequest struct {
	Identifier string `form:"identifier" json:"identifier" validate:"required"`
	Password   string `form:"password" json:"password" validate:"required"`
}

// Login verifies credentials and issues the token pair. The pair is returned
// in the body and additionally set as HttpOnly cookies for browser clients.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setAuthCookies(c, h.cfg, output.AccessToken, output.RefreshToken, output.AccessTokenTTL, output.RefreshTokenTTL)

	return response.Success(c, http.StatusOK, map[string]any{
		"user":         output.User,
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}, "Login successful")
}

type refreshRequest struct {
	RefreshToken string `form:"refreshToken" json:"refreshToken"`
}

// RefreshToken rotates the refresh token. The presented token is read from
// the refresh cookie first, then from the request body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req refreshRequest
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil && cookie.Value != "" {
		req.RefreshToken = cookie.Value
	} else if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.uc.RefreshSession(c.Request().Context(), &usecase.RefreshSessionInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setAuthCookies(c, h.cfg, output.AccessToken, output.RefreshToken, output.AccessTokenTTL, output.RefreshTokenTTL)

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}, "Token refreshed successfully")
}

// Logout revokes the stored refresh token and clears the cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	clearAuthCookies(c, h.cfg)

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

type changePasswordRequest struct {
	OldPassword string `form:"oldPassword" json:"oldPassword" validate:"required"`
	NewPassword string `form:"newPassword" json:"newPassword" validate:"required,min=8"`
}

// ChangePassword verifies the old password before storing the new one.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:      deliverycontext.GetUserID(c),
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// CurrentUser returns the authenticated user's account record.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	user, err := h.uc.GetCurrentUser(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Current user fetched successfully")
}

type updateAccountRequest struct {
	FullName string `form:"fullName" json:"fullName"`
	Email    string `form:"email" json:"email" validate:"omitempty,email"`
}

// UpdateAccount updates full name and email; empty fields stay unchanged.
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateAccount(c.Request().Context(), &usecase.UpdateAccountInput{
		UserID:   deliverycontext.GetUserID(c),
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Account updated successfully")
}

// UpdateAvatar replaces the avatar image.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.updateImage(c, "avatar", h.uc.UpdateAvatar)
}

// UpdateCoverImage replaces the cover image.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.updateImage(c, "coverImage", h.uc.UpdateCoverImage)
}

func (h *UserHandler) updateImage(
	c echo.Context,
	field string,
	update func(ctx context.Context, userID uuid.UUID, file *usecase.FileUpload) (*entity.User, error),
) error {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", field+" file is required")
	}

	upload, closeUpload, err := openUpload(fileHeader)
	if err != nil {
		return err
	}
	defer closeUpload()

	user, err := update(c.Request().Context(), deliverycontext.GetUserID(c), upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Image updated successfully")
}

// ChannelProfile returns the public channel page for a username. The viewer,
// when authenticated, gets their subscription state included.
func (h *UserHandler) ChannelProfile(c echo.Context) error {
	profile, err := h.uc.GetChannelProfile(c.Request().Context(), c.Param("username"), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Channel profile fetched successfully")
}

// ChannelQR renders a share QR code for a channel page as a PNG.
func (h *UserHandler) ChannelQR(c echo.Context) error {
	png, err := h.uc.GetChannelQR(c.Request().Context(), c.Param("username"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// WatchHistory returns the authenticated user's watch history.
func (h *UserHandler) WatchHistory(c echo.Context) error {
	page, limit := pagination(c)

	entries, err := h.uc.GetWatchHistory(c.Request().Context(), deliverycontext.GetUserID(c), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Watch history fetched successfully")
}
