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

// PlaylistHandler holds dependencies for playlist handlers.
type PlaylistHandler struct {
	uc     usecase.PlaylistUsecase
	logger *slog.Logger
}

// NewPlaylistHandler is the constructor for PlaylistHandler, injected by Fx.
func NewPlaylistHandler(uc usecase.PlaylistUsecase, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{
		uc:     uc,
		logger: logger,
	}
}

type playlistRequest struct {
	Name        string `form:"name" json:"name" validate:"required,max=255"`
	Description string `form:"description" json:"description"`
}

// CreatePlaylist creates an empty playlist.
func (h *PlaylistHandler) CreatePlaylist(c echo.Context) error {
	var req playlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	playlist, err := h.uc.CreatePlaylist(c.Request().Context(), &usecase.CreatePlaylistInput{
		OwnerID:     deliverycontext.GetUserID(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, playlist, "Playlist created successfully")
}

// GetPlaylist returns a playlist with its videos.
func (h *PlaylistHandler) GetPlaylist(c echo.Context) error {
	playlistID, err := uuidParam(c, "playlistId")
	if err != nil {
		return err
	}

	playlist, err := h.uc.GetPlaylist(c.Request().Context(), playlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Playlist fetched successfully")
}

// ListUserPlaylists returns a user's playlists.
func (h *PlaylistHandler) ListUserPlaylists(c echo.Context) error {
	ownerID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	playlists, err := h.uc.ListUserPlaylists(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlists, "Playlists fetched successfully")
}

// UpdatePlaylist renames a playlist. Owner only.
func (h *PlaylistHandler) UpdatePlaylist(c echo.Context) error {
	playlistID, err := uuidParam(c, "playlistId")
	if err != nil {
		return err
	}

	var req playlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	playlist, err := h.uc.UpdatePlaylist(c.Request().Context(), &usecase.UpdatePlaylistInput{
		PlaylistID:  playlistID,
		RequesterID: deliverycontext.GetUserID(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, playlist, "Playlist updated successfully")
}

// DeletePlaylist removes a playlist. Owner only.
func (h *PlaylistHandler) DeletePlaylist(c echo.Context) error {
	playlistID, err := uuidParam(c, "playlistId")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePlaylist(c.Request().Context(), playlistID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Playlist deleted successfully")
}

// AddVideo adds a video to a playlist. Owner only; adding a video twice is a
// no-op.
func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	return h.mutateVideos(c, h.uc.AddVideo, "Video added to playlist")
}

// RemoveVideo removes a video from a playlist. Owner only.
func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	return h.mutateVideos(c, h.uc.RemoveVideo, "Video removed from playlist")
}

func (h *PlaylistHandler) mutateVideos(
	c echo.Context,
	fn func(ctx context.Context, playlistID, videoID, requesterID uuid.UUID) error,
	message string,
) error {
	playlistID, err := uuidParam(c, "playlistId")
	if err != nil {
		return err
	}
	videoID, err := uuidParam(c, "videoId")
	if err != nil {
		return err
	}

	if err := fn(c.Request().Context(), playlistID, videoID, deliverycontext.GetUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}
