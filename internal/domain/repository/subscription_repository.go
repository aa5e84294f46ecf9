package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a subscription is not found.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the operations backing channel subscriptions.
type SubscriptionRepository interface {
	// Find retrieves the subscription of a subscriber to a channel, if any.
	Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error)

	// Create persists a new subscription.
	Create(ctx context.Context, sub *entity.Subscription) error

	// Delete removes a subscription by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListSubscribers returns the users subscribed to a channel.
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.Subscription, error)

	// ListSubscribedChannels returns the channels a user subscribes to.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.Subscription, error)

	// CountSubscribers returns how many users subscribe to a channel.
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)
}
