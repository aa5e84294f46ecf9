package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	statsRepo repository.StatsRepository
	videoRepo repository.VideoRepository
	logger    *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	VideoRepo repository.VideoRepository
	Logger    *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		statsRepo: params.StatsRepo,
		videoRepo: params.VideoRepo,
		logger:    params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetChannelStats returns the aggregate counters for the caller's channel.
func (srv *dashboardService) GetChannelStats(ctx context.Context, channelID uuid.UUID) (*entity.ChannelStats, error) {
	stats, err := srv.statsRepo.GetChannelStats(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load channel stats")
	}

	srv.log(ctx).Debug("Channel stats loaded", slog.Any("channelID", channelID))

	return stats, nil
}

// GetChannelVideos lists every video on the caller's channel, drafts included.
func (srv *dashboardService) GetChannelVideos(ctx context.Context, channelID uuid.UUID, page, limit int) (*entity.VideoPage, error) {
	videos, err := srv.videoRepo.List(ctx, &entity.VideoListOptions{
		Page:               page,
		Limit:              limit,
		OwnerID:            channelID,
		IncludeUnpublished: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channel videos")
	}

	return videos, nil
}
