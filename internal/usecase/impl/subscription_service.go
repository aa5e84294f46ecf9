package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleSubscription subscribes the user to the channel, or unsubscribes when
// already subscribed. Subscribing to oneself is rejected.
func (srv *subscriptionService) ToggleSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (*usecase.ToggleSubscriptionOutput, error) {
	if subscriberID == channelID {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cannot subscribe to your own channel")
	}

	if _, err := srv.userRepo.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "channel not found")
		}

		return nil, errors.Wrap(err, "failed to load channel")
	}

	subscribed := false

	existing, err := srv.subscriptionRepo.Find(ctx, subscriberID, channelID)
	switch {
	case err == nil:
		if delErr := srv.subscriptionRepo.Delete(ctx, existing.ID); delErr != nil {
			return nil, delErr
		}
	case errors.Is(err, repository.ErrSubscriptionNotFound):
		sub := &entity.Subscription{
			SubscriberID: subscriberID,
			ChannelID:    channelID,
		}
		if createErr := srv.subscriptionRepo.Create(ctx, sub); createErr != nil {
			return nil, createErr
		}
		subscribed = true
	default:
		return nil, errors.Wrap(err, "failed to look up subscription")
	}

	count, err := srv.subscriptionRepo.CountSubscribers(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	srv.log(ctx).Info("Subscription toggled",
		slog.Any("subscriberID", subscriberID),
		slog.Any("channelID", channelID),
		slog.Bool("subscribed", subscribed),
	)

	return &usecase.ToggleSubscriptionOutput{
		Subscribed:      subscribed,
		SubscriberCount: count,
	}, nil
}

// ListSubscribers returns the users subscribed to a channel.
func (srv *subscriptionService) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.Subscription, error) {
	subs, err := srv.subscriptionRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	return subs, nil
}

// ListSubscribedChannels returns the channels a user subscribes to.
func (srv *subscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.Subscription, error) {
	subs, err := srv.subscriptionRepo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	return subs, nil
}
