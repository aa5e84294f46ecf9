package postgres

import (
	"context"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// likeRepository implements the repository.LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Find retrieves the like a user placed on a target, if any.
func (repo *likeRepository) Find(ctx context.Context, userID uuid.UUID, targetType entity.LikeTargetType, targetID uuid.UUID) (*entity.Like, error) {
	var likeM model.LikeModel
	err := repo.db.WithContext(ctx).
		First(&likeM, "user_id = ? AND target_type = ? AND target_id = ?", userID, string(targetType), targetID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLikeNotFound
		}

		return nil, errors.Wrap(err, "failed to find like")
	}

	return toLikeDomain(&likeM), nil
}

// Create persists a new like. The unique index on (user, target) rejects a
// duplicate like as a conflict.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := &model.LikeModel{
		ID:         like.ID,
		UserID:     like.UserID,
		TargetType: string(like.TargetType),
		TargetID:   like.TargetID,
	}

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("already liked")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// Delete removes a like by its ID.
func (repo *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.LikeModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete like")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLikeNotFound
	}

	return nil
}

// CountByTarget returns how many likes a target has.
func (repo *likeRepository) CountByTarget(ctx context.Context, targetType entity.LikeTargetType, targetID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("target_type = ? AND target_id = ?", string(targetType), targetID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

// ListLikedVideos returns the videos a user has liked, newest like first.
func (repo *likeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error) {
	var rows []model.VideoModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN likes ON likes.target_id = videos.id AND likes.target_type = ?", string(entity.LikeTargetVideo)).
		Where("likes.user_id = ?", userID).
		Preload("Owner").
		Order("likes.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	videos := make([]*entity.Video, 0, len(rows))
	for i := range rows {
		videos = append(videos, toVideoDomain(&rows[i]))
	}

	return videos, nil
}

// toLikeDomain maps the persistence model back to a pure domain entity.
func toLikeDomain(data *model.LikeModel) *entity.Like {
	if data == nil {
		return nil
	}

	return &entity.Like{
		ID:         data.ID,
		UserID:     data.UserID,
		TargetType: entity.LikeTargetType(data.TargetType),
		TargetID:   data.TargetID,
		CreatedAt:  data.CreatedAt,
	}
}
