package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VideoHandler holds dependencies for video handlers.
type VideoHandler struct {
	uc     usecase.VideoUsecase
	logger *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler, injected by Fx.
func NewVideoHandler(uc usecase.VideoUsecase, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{
		uc:     uc,
		logger: logger,
	}
}

// PublishVideo handles a multipart video upload.
func (h *VideoHandler) PublishVideo(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return response.BadRequest(c, "INVALID_INPUT", "title is required")
	}
	duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)

	input := &usecase.PublishVideoInput{
		OwnerID:     deliverycontext.GetUserID(c),
		Title:       title,
		Description: c.FormValue("description"),
		Duration:    duration,
	}

	videoFile, closeVideo, err := formUpload(c, "videoFile")
	if err != nil {
		return err
	}
	defer closeVideo()
	input.VideoFile = videoFile

	thumbnail, closeThumbnail, err := formUpload(c, "thumbnail")
	if err != nil {
		return err
	}
	defer closeThumbnail()
	input.Thumbnail = thumbnail

	video, err := h.uc.PublishVideo(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, video, "Video published successfully")
}

// GetVideo returns a single video. Drafts are visible only to their owner;
// for everyone else they do not exist.
func (h *VideoHandler) GetVideo(c echo.Context) error {
	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.uc.GetVideo(c.Request().Context(), videoID, deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Video fetched successfully")
}

// ListVideos returns a filtered, sorted page of published videos.
func (h *VideoHandler) ListVideos(c echo.Context) error {
	page, limit := pagination(c)

	input := &usecase.ListVideosInput{
		Page:        page,
		Limit:       limit,
		Query:       c.QueryParam("query"),
		SortBy:      c.QueryParam("sortBy"),
		SortOrder:   c.QueryParam("sortOrder"),
		RequesterID: deliverycontext.GetUserID(c),
	}
	if ownerParam := c.QueryParam("userId"); ownerParam != "" {
		ownerID, err := uuid.Parse(ownerParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid userId")
		}
		input.OwnerID = ownerID
	}

	videos, err := h.uc.ListVideos(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, videos, "Videos fetched successfully")
}

// UpdateVideo updates title, description and optionally the thumbnail.
func (h *VideoHandler) UpdateVideo(c echo.Context) error {
	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}

	input := &usecase.UpdateVideoInput{
		VideoID:     videoID,
		RequesterID: deliverycontext.GetUserID(c),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	thumbnail, closeThumbnail, uploadErr := formUpload(c, "thumbnail")
	if uploadErr != nil {
		return uploadErr
	}
	defer closeThumbnail()
	input.Thumbnail = thumbnail

	video, err := h.uc.UpdateVideo(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Video updated successfully")
}

// DeleteVideo removes a video and its stored media.
func (h *VideoHandler) DeleteVideo(c echo.Context) error {
	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteVideo(c.Request().Context(), videoID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Video deleted successfully")
}

// TogglePublish flips the publish flag.
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}

	video, err := h.uc.TogglePublishStatus(c.Request().Context(), videoID, deliverycontext.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Publish status toggled successfully")
}
