package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsRepository aggregates per-channel counters for the dashboard.
type StatsRepository interface {
	// GetChannelStats returns the aggregate counters for a channel.
	GetChannelStats(ctx context.Context, channelID uuid.UUID) (*entity.ChannelStats, error)
}
