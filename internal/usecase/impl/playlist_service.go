package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for PlaylistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	Logger       *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		logger:       params.Logger,
	}
}

func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePlaylist creates an empty playlist.
func (srv *playlistService) CreatePlaylist(ctx context.Context, input *usecase.CreatePlaylistInput) (*entity.Playlist, error) {
	playlist := &entity.Playlist{
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Playlist created", slog.Any("playlistID", playlist.ID))

	return playlist, nil
}

// GetPlaylist loads a playlist with its videos.
func (srv *playlistService) GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaylistNotFound, "playlist not found")
		}

		return nil, errors.Wrap(err, "failed to load playlist")
	}

	return playlist, nil
}

// ListUserPlaylists returns all playlists owned by a user.
func (srv *playlistService) ListUserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	playlists, err := srv.playlistRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	return playlists, nil
}

// UpdatePlaylist renames a playlist. Owner only.
func (srv *playlistService) UpdatePlaylist(ctx context.Context, input *usecase.UpdatePlaylistInput) (*entity.Playlist, error) {
	playlist, err := srv.loadOwnedPlaylist(ctx, input.PlaylistID, input.RequesterID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		playlist.Name = input.Name
	}
	if input.Description != "" {
		playlist.Description = input.Description
	}

	if err := srv.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Playlist updated", slog.Any("playlistID", playlist.ID))

	return playlist, nil
}

// DeletePlaylist removes a playlist. Owner only.
func (srv *playlistService) DeletePlaylist(ctx context.Context, playlistID, requesterID uuid.UUID) error {
	if _, err := srv.loadOwnedPlaylist(ctx, playlistID, requesterID); err != nil {
		return err
	}

	if err := srv.playlistRepo.Delete(ctx, playlistID); err != nil {
		return err
	}

	srv.log(ctx).Info("Playlist deleted", slog.Any("playlistID", playlistID))

	return nil
}

// AddVideo appends a video to a playlist. Owner only; idempotent.
func (srv *playlistService) AddVideo(ctx context.Context, playlistID, videoID, requesterID uuid.UUID) error {
	if _, err := srv.loadOwnedPlaylist(ctx, playlistID, requesterID); err != nil {
		return err
	}

	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return errors.Wrap(err, "failed to load video")
	}

	if err := srv.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil {
		return err
	}

	srv.log(ctx).Info("Video added to playlist", slog.Any("playlistID", playlistID), slog.Any("videoID", videoID))

	return nil
}

// RemoveVideo removes a video from a playlist. Owner only.
func (srv *playlistService) RemoveVideo(ctx context.Context, playlistID, videoID, requesterID uuid.UUID) error {
	if _, err := srv.loadOwnedPlaylist(ctx, playlistID, requesterID); err != nil {
		return err
	}

	if err := srv.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return errors.Wrap(domainerrors.ErrVideoNotFound, "video not in playlist")
		}

		return err
	}

	srv.log(ctx).Info("Video removed from playlist", slog.Any("playlistID", playlistID), slog.Any("videoID", videoID))

	return nil
}

func (srv *playlistService) loadOwnedPlaylist(ctx context.Context, playlistID, requesterID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaylistNotFound, "playlist not found")
		}

		return nil, errors.Wrap(err, "failed to load playlist")
	}

	if playlist.OwnerID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner may modify a playlist")
	}

	return playlist, nil
}
