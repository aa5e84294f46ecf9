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

// SubscriptionHandler holds dependencies for subscription handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ToggleSubscription subscribes to or unsubscribes from a channel.
func (h *SubscriptionHandler) ToggleSubscription(c echo.Context) error {
	channelID, err := uuidParam(c, "channelId")
	if err != nil {
		return err
	}

	output, err := h.uc.ToggleSubscription(c.Request().Context(), deliverycontext.GetUserID(c), channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Subscription toggled successfully")
}

// ListSubscribers returns the subscribers of a channel.
func (h *SubscriptionHandler) ListSubscribers(c echo.Context) error {
	channelID, err := uuidParam(c, "channelId")
	if err != nil {
		return err
	}

	subs, err := h.uc.ListSubscribers(c.Request().Context(), channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subs, "Subscribers fetched successfully")
}

// ListSubscribedChannels returns the channels the authenticated user follows.
func (h *SubscriptionHandler) ListSubscribedChannels(c echo.Context) error {
	subs, err := h.uc.ListSubscribedChannels(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subs, "Subscribed channels fetched successfully")
}
