package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ToggleSubscriptionOutput reports the state after a toggle.
type ToggleSubscriptionOutput struct {
	Subscribed      bool
	SubscriberCount int64
}

// SubscriptionUsecase defines the interface for channel subscriptions.
type SubscriptionUsecase interface {
	// ToggleSubscription subscribes the user to the channel, or unsubscribes
	// when already subscribed. Subscribing to oneself is rejected.
	ToggleSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (*ToggleSubscriptionOutput, error)

	// ListSubscribers returns the users subscribed to a channel.
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.Subscription, error)

	// ListSubscribedChannels returns the channels a user subscribes to.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.Subscription, error)
}
