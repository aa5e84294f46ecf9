package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription records that SubscriberID follows ChannelID's uploads.
type Subscription struct {
	ID           uuid.UUID
	SubscriberID uuid.UUID
	ChannelID    uuid.UUID
	CreatedAt    time.Time

	// Subscriber and Channel are populated on read models.
	Subscriber *User
	Channel    *User
}

// ChannelStats are the aggregate dashboard totals for a channel.
type ChannelStats struct {
	TotalVideos      int64
	TotalViews       int64
	TotalSubscribers int64
	TotalLikes       int64
}
