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

// TweetHandler holds dependencies for channel post handlers.
type TweetHandler struct {
	uc     usecase.TweetUsecase
	logger *slog.Logger
}

// NewTweetHandler is the constructor for TweetHandler, injected by Fx.
func NewTweetHandler(uc usecase.TweetUsecase, logger *slog.Logger) *TweetHandler {
	return &TweetHandler{
		uc:     uc,
		logger: logger,
	}
}

type tweetRequest struct {
	Content string `form:"content" json:"content" validate:"required,max=5000"`
}

// CreateTweet posts a new tweet.
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	var req tweetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tweet input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tweet, err := h.uc.CreateTweet(c.Request().Context(), &usecase.CreateTweetInput{
		OwnerID: deliverycontext.GetUserID(c),
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tweet, "Tweet created successfully")
}

// ListUserTweets returns a user's tweets, newest first.
func (h *TweetHandler) ListUserTweets(c echo.Context) error {
	ownerID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	tweets, err := h.uc.ListUserTweets(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tweets, "Tweets fetched successfully")
}

// UpdateTweet edits a tweet. Owner only.
func (h *TweetHandler) UpdateTweet(c echo.Context) error {
	tweetID, err := uuidParam(c, "tweetId")
	if err != nil {
		return err
	}

	var req tweetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tweet input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tweet, err := h.uc.UpdateTweet(c.Request().Context(), &usecase.UpdateTweetInput{
		TweetID:     tweetID,
		RequesterID: deliverycontext.GetUserID(c),
		Content:     req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tweet, "Tweet updated successfully")
}

// DeleteTweet removes a tweet. Owner only.
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	tweetID, err := uuidParam(c, "tweetId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTweet(c.Request().Context(), tweetID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Tweet deleted successfully")
}
