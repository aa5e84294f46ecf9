package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLikeNotFound is returned when a like record is not found.
var ErrLikeNotFound = errors.New("like not found")

// LikeRepository defines the operations backing like toggles.
type LikeRepository interface {
	// Find retrieves the like a user placed on a target, if any.
	Find(ctx context.Context, userID uuid.UUID, targetType entity.LikeTargetType, targetID uuid.UUID) (*entity.Like, error)

	// Create persists a new like. At most one like per (user, target) is
	// enforced by a unique index.
	Create(ctx context.Context, like *entity.Like) error

	// Delete removes a like by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByTarget returns how many likes a target has.
	CountByTarget(ctx context.Context, targetType entity.LikeTargetType, targetID uuid.UUID) (int64, error)

	// ListLikedVideos returns the videos a user has liked, newest like first.
	ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error)
}
