package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlaylistInput defines the data required to create a playlist.
type CreatePlaylistInput struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
}

// UpdatePlaylistInput defines the data required to rename a playlist.
type UpdatePlaylistInput struct {
	PlaylistID  uuid.UUID
	RequesterID uuid.UUID
	Name        string
	Description string
}

// PlaylistUsecase defines the interface for playlist-related business operations.
type PlaylistUsecase interface {
	// CreatePlaylist creates an empty playlist.
	CreatePlaylist(ctx context.Context, input *CreatePlaylistInput) (*entity.Playlist, error)

	// GetPlaylist loads a playlist with its videos.
	GetPlaylist(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error)

	// ListUserPlaylists returns all playlists owned by a user.
	ListUserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// UpdatePlaylist renames a playlist. Owner only.
	UpdatePlaylist(ctx context.Context, input *UpdatePlaylistInput) (*entity.Playlist, error)

	// DeletePlaylist removes a playlist. Owner only.
	DeletePlaylist(ctx context.Context, playlistID, requesterID uuid.UUID) error

	// AddVideo appends a video to a playlist. Owner only; idempotent.
	AddVideo(ctx context.Context, playlistID, videoID, requesterID uuid.UUID) error

	// RemoveVideo removes a video from a playlist. Owner only.
	RemoveVideo(ctx context.Context, playlistID, videoID, requesterID uuid.UUID) error
}
