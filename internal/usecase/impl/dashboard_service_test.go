package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	mockRepo "vidtube/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetChannelStats(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)

	service := NewDashboardService(DashboardServiceParams{
		StatsRepo: statsRepo,
		VideoRepo: videoRepo,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	channelID := uuid.New()

	statsRepo.EXPECT().GetChannelStats(ctx, channelID).Return(&entity.ChannelStats{
		TotalVideos:      4,
		TotalViews:       1200,
		TotalSubscribers: 35,
		TotalLikes:       90,
	}, nil)

	stats, err := service.GetChannelStats(ctx, channelID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVideos)
	assert.Equal(t, int64(1200), stats.TotalViews)
	assert.Equal(t, int64(35), stats.TotalSubscribers)
	assert.Equal(t, int64(90), stats.TotalLikes)
}

func TestDashboardService_GetChannelVideos_IncludesDrafts(t *testing.T) {
	statsRepo := mockRepo.NewMockStatsRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)

	service := NewDashboardService(DashboardServiceParams{
		StatsRepo: statsRepo,
		VideoRepo: videoRepo,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	channelID := uuid.New()

	videoRepo.EXPECT().
		List(ctx, &entity.VideoListOptions{
			Page:               2,
			Limit:              5,
			OwnerID:            channelID,
			IncludeUnpublished: true,
		}).
		Return(&entity.VideoPage{Total: 7, Page: 2, Limit: 5}, nil)

	page, err := service.GetChannelVideos(ctx, channelID, 2, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(7), page.Total)
}
