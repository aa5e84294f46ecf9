package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video is not found.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository defines the standard operations for video persistence.
type VideoRepository interface {
	// FindByID retrieves a single video with its owner joined in.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// List returns a page of videos according to the options.
	List(ctx context.Context, opts *entity.VideoListOptions) (*entity.VideoPage, error)

	// Create persists a new video.
	Create(ctx context.Context, video *entity.Video) error

	// Update modifies an existing video.
	Update(ctx context.Context, video *entity.Video) error

	// Delete removes a video and its dependent rows (comments, likes,
	// playlist memberships) cascade at the storage layer.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViews bumps the view counter by one without touching other
	// columns.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
