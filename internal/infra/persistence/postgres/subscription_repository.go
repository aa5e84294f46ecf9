package postgres

import (
	"context"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface using GORM.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Find retrieves the subscription of a subscriber to a channel, if any.
func (repo *subscriptionRepository) Find(ctx context.Context, subscriberID, channelID uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel
	err := repo.db.WithContext(ctx).
		First(&subM, "subscriber_id = ? AND channel_id = ?", subscriberID, channelID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return toSubscriptionDomain(&subM), nil
}

// Create persists a new subscription.
func (repo *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	subM := &model.SubscriptionModel{
		ID:           sub.ID,
		SubscriberID: sub.SubscriberID,
		ChannelID:    sub.ChannelID,
	}

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("already subscribed")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt

	return nil
}

// Delete removes a subscription by its ID.
func (repo *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.SubscriptionModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// ListSubscribers returns the users subscribed to a channel.
func (repo *subscriptionRepository) ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.Subscription, error) {
	var rows []model.SubscriptionModel
	err := repo.db.WithContext(ctx).
		Preload("Subscriber").
		Where("channel_id = ?", channelID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	subs := make([]*entity.Subscription, 0, len(rows))
	for i := range rows {
		subs = append(subs, toSubscriptionDomain(&rows[i]))
	}

	return subs, nil
}

// ListSubscribedChannels returns the channels a user subscribes to.
func (repo *subscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.Subscription, error) {
	var rows []model.SubscriptionModel
	err := repo.db.WithContext(ctx).
		Preload("Channel").
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	subs := make([]*entity.Subscription, 0, len(rows))
	for i := range rows {
		subs = append(subs, toSubscriptionDomain(&rows[i]))
	}

	return subs, nil
}

// CountSubscribers returns how many users subscribe to a channel.
func (repo *subscriptionRepository) CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count subscribers")
	}

	return count, nil
}

// toSubscriptionDomain maps the persistence model back to a pure domain entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:           data.ID,
		SubscriberID: data.SubscriberID,
		ChannelID:    data.ChannelID,
		CreatedAt:    data.CreatedAt,
		Subscriber:   toUserDomain(data.Subscriber).Sanitized(),
		Channel:      toUserDomain(data.Channel).Sanitized(),
	}
}
