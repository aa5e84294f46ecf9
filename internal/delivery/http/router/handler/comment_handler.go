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

// CommentHandler holds dependencies for comment handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

type commentRequest struct {
	Content string `form:"content" json:"content" validate:"required,max=10000"`
}

// ListComments returns a page of comments for a video, newest first.
func (h *CommentHandler) ListComments(c echo.Context) error {
	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}
	page, limit := pagination(c)

	comments, err := h.uc.ListComments(c.Request().Context(), videoID, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "Comments fetched successfully")
}

// AddComment posts a comment on a video.
func (h *CommentHandler) AddComment(c echo.Context) error {
	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.uc.AddComment(c.Request().Context(), &usecase.AddCommentInput{
		VideoID: videoID,
		OwnerID: deliverycontext.GetUserID(c),
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment added successfully")
}

// UpdateComment edits a comment's content. Owner only.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	commentID, err := uuidParam(c, "commentId")
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.uc.UpdateComment(c.Request().Context(), &usecase.UpdateCommentInput{
		CommentID:   commentID,
		RequesterID: deliverycontext.GetUserID(c),
		Content:     req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment removes a comment. Owner only.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := uuidParam(c, "commentId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteComment(c.Request().Context(), commentID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
