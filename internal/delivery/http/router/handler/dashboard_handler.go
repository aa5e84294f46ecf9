package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for channel dashboard handlers.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// ChannelStats returns aggregate counters for the authenticated channel.
func (h *DashboardHandler) ChannelStats(c echo.Context) error {
	stats, err := h.uc.GetChannelStats(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Channel stats fetched successfully")
}

// ChannelVideos returns the authenticated channel's videos, drafts included.
func (h *DashboardHandler) ChannelVideos(c echo.Context) error {
	page, limit := pagination(c)

	videos, err := h.uc.GetChannelVideos(c.Request().Context(), deliverycontext.GetUserID(c), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, videos, "Channel videos fetched successfully")
}
