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

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	commentRepo *mockRepo.MockCommentRepository
	videoRepo   *mockRepo.MockVideoRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)

	service := NewCommentService(CommentServiceParams{
		CommentRepo: commentRepo,
		VideoRepo:   videoRepo,
		Logger:      newDiscardLogger(),
	})

	return commentServiceFixtures{
		service:     service,
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

func TestCommentService_AddComment_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()
	commentID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID, IsPublished: true}, nil)
	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(_ context.Context, comment *entity.Comment) {
			comment.ID = commentID
		}).
		Return(nil)

	comment, err := fx.service.AddComment(ctx, &usecase.AddCommentInput{
		VideoID: videoID,
		OwnerID: ownerID,
		Content: "great video",
	})

	require.NoError(t, err)
	assert.Equal(t, commentID, comment.ID)
	assert.Equal(t, "great video", comment.Content)
	assert.Equal(t, ownerID, comment.OwnerID)
}

func TestCommentService_AddComment_UnpublishedVideoHidden(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	videoID := uuid.New()
	videoOwner := uuid.New()

	fx.videoRepo.EXPECT().
		FindByID(ctx, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: videoOwner, IsPublished: false}, nil)

	_, err := fx.service.AddComment(ctx, &usecase.AddCommentInput{
		VideoID: videoID,
		OwnerID: uuid.New(),
		Content: "hello",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestCommentService_UpdateComment_OwnerOnly(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()
	ownerID := uuid.New()

	fx.commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, OwnerID: ownerID, Content: "original"}, nil)

	_, err := fx.service.UpdateComment(ctx, &usecase.UpdateCommentInput{
		CommentID:   commentID,
		RequesterID: uuid.New(),
		Content:     "edited",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCommentService_DeleteComment_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()
	ownerID := uuid.New()

	fx.commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, OwnerID: ownerID}, nil)
	fx.commentRepo.EXPECT().Delete(ctx, commentID).Return(nil)

	err := fx.service.DeleteComment(ctx, commentID, ownerID)

	require.NoError(t, err)
}

func TestCommentService_ListComments_UnknownVideo(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := fx.service.ListComments(ctx, videoID, 1, 10)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}
