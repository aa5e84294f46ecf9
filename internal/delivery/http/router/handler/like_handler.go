package handler

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LikeHandler holds dependencies for like handlers.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{
		uc:     uc,
		logger: logger,
	}
}

// ToggleVideoLike likes or unlikes a video.
func (h *LikeHandler) ToggleVideoLike(c echo.Context) error {
	return h.toggle(c, "videoId", h.uc.ToggleVideoLike)
}

// ToggleCommentLike likes or unlikes a comment.
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	return h.toggle(c, "commentId", h.uc.ToggleCommentLike)
}

// ToggleTweetLike likes or unlikes a tweet.
func (h *LikeHandler) ToggleTweetLike(c echo.Context) error {
	return h.toggle(c, "tweetId", h.uc.ToggleTweetLike)
}

func (h *LikeHandler) toggle(
	c echo.Context,
	param string,
	fn func(ctx context.Context, userID, targetID uuid.UUID) (*usecase.ToggleLikeOutput, error),
) error {
	targetID, err := uuidParam(c, param)
	if err != nil {
		return err
	}

	output, err := fn(c.Request().Context(), deliverycontext.GetUserID(c), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Like toggled successfully")
}

// ListLikedVideos returns the videos the user has liked, most recent first.
func (h *LikeHandler) ListLikedVideos(c echo.Context) error {
	videos, err := h.uc.ListLikedVideos(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, videos, "Liked videos fetched successfully")
}
