package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// PublishVideoInput defines the data required to upload a new video.
type PublishVideoInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Duration    float64
	VideoFile   *FileUpload
	Thumbnail   *FileUpload
}

// UpdateVideoInput carries the mutable video fields. Empty fields are left
// unchanged; Thumbnail replaces the stored one when present.
type UpdateVideoInput struct {
	VideoID     uuid.UUID
	RequesterID uuid.UUID
	Title       string
	Description string
	Thumbnail   *FileUpload
}

// ListVideosInput mirrors the paging, filtering and sorting query parameters.
type ListVideosInput struct {
	Page      int
	Limit     int
	Query     string
	OwnerID   uuid.UUID // uuid.Nil means all channels.
	SortBy    string
	SortOrder string

	// RequesterID is the authenticated viewer; their own unpublished videos
	// are included when they list their own channel.
	RequesterID uuid.UUID
}

// VideoUsecase defines the interface for video-related business operations.
type VideoUsecase interface {
	// PublishVideo stores the media files and creates the video record. A
	// published event is emitted for subscriber fan-out.
	PublishVideo(ctx context.Context, input *PublishVideoInput) (*entity.Video, error)

	// GetVideo loads a video, bumps its view counter and records the watch
	// in the viewer's history when authenticated.
	GetVideo(ctx context.Context, videoID, viewerID uuid.UUID) (*entity.Video, error)

	// ListVideos returns a page of videos.
	ListVideos(ctx context.Context, input *ListVideosInput) (*entity.VideoPage, error)

	// UpdateVideo modifies title, description or thumbnail. Owner only.
	UpdateVideo(ctx context.Context, input *UpdateVideoInput) (*entity.Video, error)

	// DeleteVideo removes the video and its media files. Owner only.
	DeleteVideo(ctx context.Context, videoID, requesterID uuid.UUID) error

	// TogglePublishStatus flips the published flag. Owner only.
	TogglePublishStatus(ctx context.Context, videoID, requesterID uuid.UUID) (*entity.Video, error)
}
