package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase exposes the owner's channel statistics and uploads.
type DashboardUsecase interface {
	// GetChannelStats returns the aggregate counters for the caller's channel.
	GetChannelStats(ctx context.Context, channelID uuid.UUID) (*entity.ChannelStats, error)

	// GetChannelVideos lists every video on the caller's channel, drafts
	// included.
	GetChannelVideos(ctx context.Context, channelID uuid.UUID, page, limit int) (*entity.VideoPage, error)
}
