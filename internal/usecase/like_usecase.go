package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleLikeOutput reports the state after a toggle.
type ToggleLikeOutput struct {
	Liked      bool
	TotalLikes int64
}

// LikeUsecase defines the interface for like toggles across videos, comments
// and tweets.
type LikeUsecase interface {
	// ToggleVideoLike likes the video, or removes the like when present.
	ToggleVideoLike(ctx context.Context, userID, videoID uuid.UUID) (*ToggleLikeOutput, error)

	// ToggleCommentLike likes the comment, or removes the like when present.
	ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (*ToggleLikeOutput, error)

	// ToggleTweetLike likes the tweet, or removes the like when present.
	ToggleTweetLike(ctx context.Context, userID, tweetID uuid.UUID) (*ToggleLikeOutput, error)

	// ListLikedVideos returns the videos the user has liked, newest first.
	ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error)
}
