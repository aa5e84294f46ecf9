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

func createTestTweetService(t *testing.T) (usecase.TweetUsecase, *mockRepo.MockTweetRepository) {
	tweetRepo := mockRepo.NewMockTweetRepository(t)

	service := NewTweetService(TweetServiceParams{
		TweetRepo: tweetRepo,
		Logger:    newDiscardLogger(),
	})

	return service, tweetRepo
}

func TestTweetService_CreateTweet(t *testing.T) {
	service, tweetRepo := createTestTweetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tweetID := uuid.New()

	tweetRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Tweet")).
		Run(func(_ context.Context, tweet *entity.Tweet) {
			tweet.ID = tweetID
		}).
		Return(nil)

	tweet, err := service.CreateTweet(ctx, &usecase.CreateTweetInput{
		OwnerID: ownerID,
		Content: "new upload coming friday",
	})

	require.NoError(t, err)
	assert.Equal(t, tweetID, tweet.ID)
	assert.Equal(t, ownerID, tweet.OwnerID)
}

func TestTweetService_UpdateTweet_Success(t *testing.T) {
	service, tweetRepo := createTestTweetService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tweetID := uuid.New()

	tweetRepo.EXPECT().
		FindByID(ctx, tweetID).
		Return(&entity.Tweet{ID: tweetID, OwnerID: ownerID, Content: "old"}, nil)
	tweetRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Tweet")).Return(nil)

	tweet, err := service.UpdateTweet(ctx, &usecase.UpdateTweetInput{
		TweetID:     tweetID,
		RequesterID: ownerID,
		Content:     "new",
	})

	require.NoError(t, err)
	assert.Equal(t, "new", tweet.Content)
}

func TestTweetService_UpdateTweet_NotOwner(t *testing.T) {
	service, tweetRepo := createTestTweetService(t)

	ctx := context.Background()
	tweetID := uuid.New()

	tweetRepo.EXPECT().
		FindByID(ctx, tweetID).
		Return(&entity.Tweet{ID: tweetID, OwnerID: uuid.New()}, nil)

	_, err := service.UpdateTweet(ctx, &usecase.UpdateTweetInput{
		TweetID:     tweetID,
		RequesterID: uuid.New(),
		Content:     "hijacked",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestTweetService_DeleteTweet_NotFound(t *testing.T) {
	service, tweetRepo := createTestTweetService(t)

	ctx := context.Background()
	tweetID := uuid.New()

	tweetRepo.EXPECT().FindByID(ctx, tweetID).Return(nil, repository.ErrTweetNotFound)

	err := service.DeleteTweet(ctx, tweetID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTweetNotFound))
}
