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

type playlistServiceFixtures struct {
	service      usecase.PlaylistUsecase
	playlistRepo *mockRepo.MockPlaylistRepository
	videoRepo    *mockRepo.MockVideoRepository
}

func createTestPlaylistService(t *testing.T) playlistServiceFixtures {
	playlistRepo := mockRepo.NewMockPlaylistRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)

	service := NewPlaylistService(PlaylistServiceParams{
		PlaylistRepo: playlistRepo,
		VideoRepo:    videoRepo,
		Logger:       newDiscardLogger(),
	})

	return playlistServiceFixtures{
		service:      service,
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
	}
}

func TestPlaylistService_CreatePlaylist(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	playlistID := uuid.New()

	fx.playlistRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Playlist")).
		Run(func(_ context.Context, playlist *entity.Playlist) {
			playlist.ID = playlistID
		}).
		Return(nil)

	playlist, err := fx.service.CreatePlaylist(ctx, &usecase.CreatePlaylistInput{
		OwnerID:     ownerID,
		Name:        "favorites",
		Description: "things worth rewatching",
	})

	require.NoError(t, err)
	assert.Equal(t, playlistID, playlist.ID)
	assert.Equal(t, "favorites", playlist.Name)
	assert.Equal(t, ownerID, playlist.OwnerID)
}

func TestPlaylistService_AddVideo_Success(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	fx.playlistRepo.EXPECT().
		FindByID(ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(&entity.Video{ID: videoID, IsPublished: true}, nil)
	fx.playlistRepo.EXPECT().AddVideo(ctx, playlistID, videoID).Return(nil)

	err := fx.service.AddVideo(ctx, playlistID, videoID, ownerID)

	require.NoError(t, err)
}

func TestPlaylistService_AddVideo_NotOwner(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	playlistID := uuid.New()

	fx.playlistRepo.EXPECT().
		FindByID(ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: uuid.New()}, nil)

	err := fx.service.AddVideo(ctx, playlistID, uuid.New(), uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPlaylistService_AddVideo_UnknownVideo(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	fx.playlistRepo.EXPECT().
		FindByID(ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	err := fx.service.AddVideo(ctx, playlistID, videoID, ownerID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestPlaylistService_RemoveVideo_NotInPlaylist(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	playlistID := uuid.New()
	videoID := uuid.New()

	fx.playlistRepo.EXPECT().
		FindByID(ctx, playlistID).
		Return(&entity.Playlist{ID: playlistID, OwnerID: ownerID}, nil)
	fx.playlistRepo.EXPECT().RemoveVideo(ctx, playlistID, videoID).Return(repository.ErrVideoNotFound)

	err := fx.service.RemoveVideo(ctx, playlistID, videoID, ownerID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestPlaylistService_DeletePlaylist_NotFound(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	playlistID := uuid.New()

	fx.playlistRepo.EXPECT().FindByID(ctx, playlistID).Return(nil, repository.ErrPlaylistNotFound)

	err := fx.service.DeletePlaylist(ctx, playlistID, uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPlaylistNotFound))
}
