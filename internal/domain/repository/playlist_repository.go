package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlaylistNotFound is returned when a playlist is not found.
var ErrPlaylistNotFound = errors.New("playlist not found")

// PlaylistRepository defines the standard operations for playlist persistence.
type PlaylistRepository interface {
	// FindByID retrieves a playlist with its videos joined in.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)

	// ListByOwner returns all playlists owned by a user, without videos.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// Create persists a new playlist.
	Create(ctx context.Context, playlist *entity.Playlist) error

	// Update modifies name and description of an existing playlist.
	Update(ctx context.Context, playlist *entity.Playlist) error

	// Delete removes a playlist and its memberships.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddVideo appends a video to a playlist; adding an existing member is
	// a no-op.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideo removes a video from a playlist.
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
}
