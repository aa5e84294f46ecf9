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
	"gorm.io/gorm/clause"
)

// playlistRepository implements the repository.PlaylistRepository interface using GORM.
type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{db: db}
}

// FindByID retrieves a playlist with its videos joined in.
func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel
	err := repo.db.WithContext(ctx).
		Preload("Videos").
		Preload("Videos.Owner").
		First(&playlistM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by id")
	}

	return toPlaylistDomain(&playlistM), nil
}

// ListByOwner returns all playlists owned by a user, without videos.
func (repo *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var rows []model.PlaylistModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	playlists := make([]*entity.Playlist, 0, len(rows))
	for i := range rows {
		playlists = append(playlists, toPlaylistDomain(&rows[i]))
	}

	return playlists, nil
}

// Create persists a new playlist.
func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := &model.PlaylistModel{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
	}

	if err := repo.db.WithContext(ctx).Create(playlistM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create playlist")
	}

	playlist.ID = playlistM.ID
	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt

	return nil
}

// Update modifies name and description of an existing playlist.
func (repo *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ?", playlist.ID).
		Updates(map[string]any{
			"name":        playlist.Name,
			"description": playlist.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// Delete removes a playlist and its memberships.
func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PlaylistModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// AddVideo appends a video to a playlist; adding an existing member is a no-op.
func (repo *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	member := model.PlaylistVideoModel{
		PlaylistID: playlistID,
		VideoID:    videoID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&member).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add video to playlist")
	}

	return nil
}

// RemoveVideo removes a video from a playlist.
func (repo *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Delete(&model.PlaylistVideoModel{}, "playlist_id = ? AND video_id = ?", playlistID, videoID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove video from playlist")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// toPlaylistDomain maps the persistence model back to a pure domain entity.
func toPlaylistDomain(data *model.PlaylistModel) *entity.Playlist {
	if data == nil {
		return nil
	}

	playlist := &entity.Playlist{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	for i := range data.Videos {
		playlist.Videos = append(playlist.Videos, toVideoDomain(&data.Videos[i]))
	}

	return playlist
}
