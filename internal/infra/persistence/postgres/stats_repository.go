package postgres

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// statsRepository implements the repository.StatsRepository interface using GORM.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

// GetChannelStats returns the aggregate counters for a channel.
func (repo *statsRepository) GetChannelStats(ctx context.Context, channelID uuid.UUID) (*entity.ChannelStats, error) {
	db := repo.db.WithContext(ctx)
	stats := &entity.ChannelStats{}

	if err := db.Model(&model.VideoModel{}).
		Where("owner_id = ?", channelID).
		Count(&stats.TotalVideos).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count channel videos")
	}

	var totalViews struct{ Total int64 }
	if err := db.Model(&model.VideoModel{}).
		Select("COALESCE(SUM(views), 0) AS total").
		Where("owner_id = ?", channelID).
		Scan(&totalViews).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum channel views")
	}
	stats.TotalViews = totalViews.Total

	if err := db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).
		Count(&stats.TotalSubscribers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count channel subscribers")
	}

	if err := db.Model(&model.LikeModel{}).
		Where("target_type = ? AND target_id IN (?)",
			string(entity.LikeTargetVideo),
			db.Session(&gorm.Session{NewDB: true}).
				Model(&model.VideoModel{}).
				Select("id").
				Where("owner_id = ?", channelID),
		).
		Count(&stats.TotalLikes).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count channel likes")
	}

	return stats, nil
}
