package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	userRepo         *mockRepo.MockUserRepository
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		UserRepo:         userRepo,
		Logger:           newDiscardLogger(),
	})

	return subscriptionServiceFixtures{
		service:          service,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

func TestSubscriptionService_ToggleSubscription_SelfSubscribe(t *testing.T) {
	fx := createTestSubscriptionService(t)

	userID := uuid.New()

	_, err := fx.service.ToggleSubscription(context.Background(), userID, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSubscriptionService_ToggleSubscription_UnknownChannel(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	channelID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, channelID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ToggleSubscription(ctx, uuid.New(), channelID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestSubscriptionService_ToggleSubscription_Subscribe(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	subscriberID := uuid.New()
	channelID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID, Username: "chan"}, nil)
	fx.subscriptionRepo.EXPECT().
		Find(ctx, subscriberID, channelID).
		Return(nil, repository.ErrSubscriptionNotFound)
	fx.subscriptionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)
	fx.subscriptionRepo.EXPECT().CountSubscribers(ctx, channelID).Return(int64(12), nil)

	output, err := fx.service.ToggleSubscription(ctx, subscriberID, channelID)

	require.NoError(t, err)
	assert.True(t, output.Subscribed)
	assert.Equal(t, int64(12), output.SubscriberCount)
}

func TestSubscriptionService_ToggleSubscription_Unsubscribe(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	subscriberID := uuid.New()
	channelID := uuid.New()
	subID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, channelID).Return(&entity.User{ID: channelID, Username: "chan"}, nil)
	fx.subscriptionRepo.EXPECT().
		Find(ctx, subscriberID, channelID).
		Return(&entity.Subscription{ID: subID, SubscriberID: subscriberID, ChannelID: channelID}, nil)
	fx.subscriptionRepo.EXPECT().Delete(ctx, subID).Return(nil)
	fx.subscriptionRepo.EXPECT().CountSubscribers(ctx, channelID).Return(int64(11), nil)

	output, err := fx.service.ToggleSubscription(ctx, subscriberID, channelID)

	require.NoError(t, err)
	assert.False(t, output.Subscribed)
	assert.Equal(t, int64(11), output.SubscriberCount)
}
