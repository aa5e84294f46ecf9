// Package handler contains the HTTP handlers for the application.
package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"vidtube/config"
	"vidtube/internal/delivery/http/middleware"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// uuidParam parses a UUID path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}

// pagination reads the page and limit query parameters. Out-of-range values
// are normalized by the repository layer.
func pagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))

	return page, limit
}

// formUpload opens an optional multipart file field. The returned closer must
// be called after the usecase consumed the reader; a missing field yields a
// nil upload and a no-op closer.
func formUpload(c echo.Context, field string) (*usecase.FileUpload, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// Echo returns http.ErrMissingFile wrapped; treat any lookup
		// failure as "not provided" and let the usecase decide whether
		// the field was required.
		return nil, func() {}, nil
	}

	return openUpload(fileHeader)
}

func openUpload(fileHeader *multipart.FileHeader) (*usecase.FileUpload, func(), error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, func() {}, echo.NewHTTPError(http.StatusBadRequest, "failed to read uploaded file")
	}

	upload := &usecase.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Reader:      file,
	}

	return upload, func() { _ = file.Close() }, nil
}

// setAuthCookies attaches the token pair as HttpOnly cookies.
func setAuthCookies(c echo.Context, cfg *config.Config, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	c.SetCookie(authCookie(cfg, middleware.AccessTokenCookie, accessToken, accessTTL))
	c.SetCookie(authCookie(cfg, middleware.RefreshTokenCookie, refreshToken, refreshTTL))
}

// clearAuthCookies expires both token cookies.
func clearAuthCookies(c echo.Context, cfg *config.Config) {
	c.SetCookie(authCookie(cfg, middleware.AccessTokenCookie, "", -time.Hour))
	c.SetCookie(authCookie(cfg, middleware.RefreshTokenCookie, "", -time.Hour))
}

func authCookie(cfg *config.Config, name, value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if cfg.Cookie != nil {
		cookie.Secure = cfg.Cookie.Secure
		cookie.Domain = cfg.Cookie.Domain
	}

	return cookie
}
