package impl

import (
	"context"
	"strings"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockSvc "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type videoServiceFixtures struct {
	service    usecase.VideoUsecase
	videoRepo  *mockRepo.MockVideoRepository
	userRepo   *mockRepo.MockUserRepository
	mediaStore *mockSvc.MockMediaStore
	publisher  *mockSvc.MockEventPublisher
}

func createTestVideoService(t *testing.T) videoServiceFixtures {
	videoRepo := mockRepo.NewMockVideoRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	mediaStore := mockSvc.NewMockMediaStore(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewVideoService(VideoServiceParams{
		VideoRepo:  videoRepo,
		UserRepo:   userRepo,
		MediaStore: mediaStore,
		Publisher:  publisher,
		Logger:     newDiscardLogger(),
	})

	return videoServiceFixtures{
		service:    service,
		videoRepo:  videoRepo,
		userRepo:   userRepo,
		mediaStore: mediaStore,
		publisher:  publisher,
	}
}

func TestVideoService_PublishVideo_Success(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := &entity.User{ID: ownerID, Username: "alice"}

	fx.userRepo.EXPECT().FindByID(ctx, ownerID).Return(owner, nil)
	fx.mediaStore.EXPECT().
		Store(ctx, "clip.mp4", "video/mp4", mock.Anything).
		Return("https://cdn.example.com/media/clip.mp4", nil)
	fx.mediaStore.EXPECT().
		Store(ctx, "thumb.png", "image/png", mock.Anything).
		Return("https://cdn.example.com/media/thumb.png", nil)
	fx.videoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Video")).
		Run(func(ctx context.Context, video *entity.Video) {
			video.ID = uuid.New()
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishVideoEvent(ctx, mock.AnythingOfType("*service.VideoPublishedEvent")).
		RunAndReturn(func(ctx context.Context, event *service.VideoPublishedEvent) error {
			assert.Equal(t, ownerID.String(), event.ChannelID)
			assert.Equal(t, "alice", event.ChannelName)
			assert.Equal(t, "My first video", event.Title)

			return nil
		})

	video, err := fx.service.PublishVideo(ctx, &usecase.PublishVideoInput{
		OwnerID:   ownerID,
		Title:     "My first video",
		Duration:  12.5,
		VideoFile: &usecase.FileUpload{Filename: "clip.mp4", ContentType: "video/mp4", Reader: strings.NewReader("mp4")},
		Thumbnail: &usecase.FileUpload{Filename: "thumb.png", ContentType: "image/png", Reader: strings.NewReader("png")},
	})

	require.NoError(t, err)
	assert.True(t, video.IsPublished)
	assert.Equal(t, "https://cdn.example.com/media/clip.mp4", video.VideoFile)
	assert.NotNil(t, video.Owner)
	assert.Empty(t, video.Owner.PasswordHash)
}

// A failed publish event never fails the upload.
func TestVideoService_PublishVideo_EventFailureIgnored(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, ownerID).Return(&entity.User{ID: ownerID, Username: "alice"}, nil)
	fx.mediaStore.EXPECT().
		Store(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example.com/media/x", nil).
		Twice()
	fx.videoRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Video")).Return(nil)
	fx.publisher.EXPECT().
		PublishVideoEvent(ctx, mock.AnythingOfType("*service.VideoPublishedEvent")).
		Return(errors.New("broker unavailable"))

	_, err := fx.service.PublishVideo(ctx, &usecase.PublishVideoInput{
		OwnerID:   ownerID,
		Title:     "Resilient upload",
		VideoFile: &usecase.FileUpload{Filename: "clip.mp4", Reader: strings.NewReader("mp4")},
		Thumbnail: &usecase.FileUpload{Filename: "thumb.png", Reader: strings.NewReader("png")},
	})

	require.NoError(t, err)
}

func TestVideoService_GetVideo_IncrementsViews(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()
	viewerID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{
		ID:          videoID,
		OwnerID:     uuid.New(),
		Views:       41,
		IsPublished: true,
	}, nil)
	fx.videoRepo.EXPECT().IncrementViews(ctx, videoID).Return(nil)
	fx.userRepo.EXPECT().AddWatchEntry(ctx, viewerID, videoID).Return(nil)

	video, err := fx.service.GetVideo(ctx, videoID, viewerID)

	require.NoError(t, err)
	assert.Equal(t, int64(42), video.Views)
}

// Anonymous viewers bump the counter but leave no watch history.
func TestVideoService_GetVideo_AnonymousViewer(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{
		ID:          videoID,
		OwnerID:     uuid.New(),
		IsPublished: true,
	}, nil)
	fx.videoRepo.EXPECT().IncrementViews(ctx, videoID).Return(nil)

	_, err := fx.service.GetVideo(ctx, videoID, uuid.Nil)

	require.NoError(t, err)
}

// Drafts exist only for their owner; everyone else gets not-found rather
// than forbidden, so the response does not confirm the video exists.
func TestVideoService_GetVideo_DraftVisibility(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()
	draft := &entity.Video{ID: videoID, OwnerID: ownerID, IsPublished: false}

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(draft, nil)

	_, err := fx.service.GetVideo(ctx, videoID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))

	// The owner still sees it.
	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(draft, nil)
	fx.videoRepo.EXPECT().IncrementViews(ctx, videoID).Return(nil)
	fx.userRepo.EXPECT().AddWatchEntry(ctx, ownerID, videoID).Return(nil)

	video, err := fx.service.GetVideo(ctx, videoID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, videoID, video.ID)
}

func TestVideoService_ListVideos_DraftInclusion(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.videoRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*entity.VideoListOptions")).
		RunAndReturn(func(ctx context.Context, opts *entity.VideoListOptions) (*entity.VideoPage, error) {
			assert.True(t, opts.IncludeUnpublished)

			return &entity.VideoPage{}, nil
		}).
		Once()

	_, err := fx.service.ListVideos(ctx, &usecase.ListVideosInput{OwnerID: ownerID, RequesterID: ownerID})
	require.NoError(t, err)

	// A different requester never sees drafts.
	fx.videoRepo.EXPECT().
		List(ctx, mock.AnythingOfType("*entity.VideoListOptions")).
		RunAndReturn(func(ctx context.Context, opts *entity.VideoListOptions) (*entity.VideoPage, error) {
			assert.False(t, opts.IncludeUnpublished)

			return &entity.VideoPage{}, nil
		})

	_, err = fx.service.ListVideos(ctx, &usecase.ListVideosInput{OwnerID: ownerID, RequesterID: uuid.New()})
	require.NoError(t, err)
}

func TestVideoService_UpdateVideo_OwnerOnly(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{
		ID:          videoID,
		OwnerID:     uuid.New(),
		IsPublished: true,
	}, nil)

	_, err := fx.service.UpdateVideo(ctx, &usecase.UpdateVideoInput{
		VideoID:     videoID,
		RequesterID: uuid.New(),
		Title:       "New title",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestVideoService_DeleteVideo_RemovesMedia(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{
		ID:        videoID,
		OwnerID:   ownerID,
		VideoFile: "https://cdn.example.com/media/clip.mp4",
		Thumbnail: "https://cdn.example.com/media/thumb.png",
	}, nil)
	fx.videoRepo.EXPECT().Delete(ctx, videoID).Return(nil)
	fx.mediaStore.EXPECT().Remove(ctx, "https://cdn.example.com/media/clip.mp4").Return(nil)
	fx.mediaStore.EXPECT().Remove(ctx, "https://cdn.example.com/media/thumb.png").Return(nil)

	require.NoError(t, fx.service.DeleteVideo(ctx, videoID, ownerID))
}

func TestVideoService_TogglePublishStatus(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()
	ownerID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{
		ID:          videoID,
		OwnerID:     ownerID,
		IsPublished: true,
	}, nil)
	fx.videoRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Video")).Return(nil)

	video, err := fx.service.TogglePublishStatus(ctx, videoID, ownerID)

	require.NoError(t, err)
	assert.False(t, video.IsPublished)
}

func TestVideoService_GetVideo_NotFound(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := fx.service.GetVideo(ctx, videoID, uuid.Nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}
