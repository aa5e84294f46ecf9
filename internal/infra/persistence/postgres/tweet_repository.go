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

// tweetRepository implements the repository.TweetRepository interface using GORM.
type tweetRepository struct {
	db *gorm.DB
}

// NewTweetRepository is the constructor for tweetRepository.
func NewTweetRepository(db *gorm.DB) repository.TweetRepository {
	return &tweetRepository{db: db}
}

// FindByID retrieves a tweet by its ID.
func (repo *tweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	var tweetM model.TweetModel
	if err := repo.db.WithContext(ctx).First(&tweetM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTweetNotFound
		}

		return nil, errors.Wrap(err, "failed to find tweet by id")
	}

	return toTweetDomain(&tweetM), nil
}

// ListByOwner returns all tweets posted by a user, newest first.
func (repo *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	var rows []model.TweetModel
	err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tweets")
	}

	tweets := make([]*entity.Tweet, 0, len(rows))
	for i := range rows {
		tweets = append(tweets, toTweetDomain(&rows[i]))
	}

	return tweets, nil
}

// Create persists a new tweet.
func (repo *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	tweetM := &model.TweetModel{
		ID:      tweet.ID,
		OwnerID: tweet.OwnerID,
		Content: tweet.Content,
	}

	if err := repo.db.WithContext(ctx).Create(tweetM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tweet")
	}

	tweet.ID = tweetM.ID
	tweet.CreatedAt = tweetM.CreatedAt
	tweet.UpdatedAt = tweetM.UpdatedAt

	return nil
}

// Update modifies the content of an existing tweet.
func (repo *tweetRepository) Update(ctx context.Context, tweet *entity.Tweet) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TweetModel{}).
		Where("id = ?", tweet.ID).
		Update("content", tweet.Content)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tweet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// Delete removes a tweet by its ID.
func (repo *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.TweetModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tweet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTweetNotFound
	}

	return nil
}

// toTweetDomain maps the persistence model back to a pure domain entity.
func toTweetDomain(data *model.TweetModel) *entity.Tweet {
	if data == nil {
		return nil
	}

	return &entity.Tweet{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Owner:     toUserDomain(data.Owner).Sanitized(),
	}
}
