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

type likeServiceFixtures struct {
	service     usecase.LikeUsecase
	likeRepo    *mockRepo.MockLikeRepository
	videoRepo   *mockRepo.MockVideoRepository
	commentRepo *mockRepo.MockCommentRepository
	tweetRepo   *mockRepo.MockTweetRepository
}

func createTestLikeService(t *testing.T) likeServiceFixtures {
	likeRepo := mockRepo.NewMockLikeRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	tweetRepo := mockRepo.NewMockTweetRepository(t)

	service := NewLikeService(LikeServiceParams{
		LikeRepo:    likeRepo,
		VideoRepo:   videoRepo,
		CommentRepo: commentRepo,
		TweetRepo:   tweetRepo,
		Logger:      newDiscardLogger(),
	})

	return likeServiceFixtures{
		service:     service,
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

func TestLikeService_ToggleVideoLike_Like(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID, IsPublished: true}, nil)
	fx.likeRepo.EXPECT().
		Find(ctx, userID, entity.LikeTargetVideo, videoID).
		Return(nil, repository.ErrLikeNotFound)
	fx.likeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).Return(nil)
	fx.likeRepo.EXPECT().CountByTarget(ctx, entity.LikeTargetVideo, videoID).Return(int64(8), nil)

	output, err := fx.service.ToggleVideoLike(ctx, userID, videoID)

	require.NoError(t, err)
	assert.True(t, output.Liked)
	assert.Equal(t, int64(8), output.TotalLikes)
}

func TestLikeService_ToggleVideoLike_Unlike(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	videoID := uuid.New()
	likeID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID, IsPublished: true}, nil)
	fx.likeRepo.EXPECT().
		Find(ctx, userID, entity.LikeTargetVideo, videoID).
		Return(&entity.Like{ID: likeID, UserID: userID, TargetType: entity.LikeTargetVideo, TargetID: videoID}, nil)
	fx.likeRepo.EXPECT().Delete(ctx, likeID).Return(nil)
	fx.likeRepo.EXPECT().CountByTarget(ctx, entity.LikeTargetVideo, videoID).Return(int64(7), nil)

	output, err := fx.service.ToggleVideoLike(ctx, userID, videoID)

	require.NoError(t, err)
	assert.False(t, output.Liked)
	assert.Equal(t, int64(7), output.TotalLikes)
}

func TestLikeService_ToggleVideoLike_UnknownVideo(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := fx.service.ToggleVideoLike(ctx, uuid.New(), videoID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestLikeService_ToggleCommentLike(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(&entity.Comment{ID: commentID}, nil)
	fx.likeRepo.EXPECT().
		Find(ctx, userID, entity.LikeTargetComment, commentID).
		Return(nil, repository.ErrLikeNotFound)
	fx.likeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Like")).Return(nil)
	fx.likeRepo.EXPECT().CountByTarget(ctx, entity.LikeTargetComment, commentID).Return(int64(1), nil)

	output, err := fx.service.ToggleCommentLike(ctx, userID, commentID)

	require.NoError(t, err)
	assert.True(t, output.Liked)
}
