package postgres

import (
	"context"
	"math"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// videoRepository implements the repository.VideoRepository interface using GORM.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

// FindByID retrieves a single video with its owner joined in.
func (repo *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var videoM model.VideoModel
	err := repo.db.WithContext(ctx).
		Preload("Owner").
		First(&videoM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVideoNotFound
		}

		return nil, errors.Wrap(err, "failed to find video by id")
	}

	return toVideoDomain(&videoM), nil
}

// List returns a page of videos according to the options.
func (repo *videoRepository) List(ctx context.Context, opts *entity.VideoListOptions) (*entity.VideoPage, error) {
	page, limit := normalizePage(opts.Page, opts.Limit)

	query := repo.db.WithContext(ctx).Model(&model.VideoModel{})

	if !opts.IncludeUnpublished {
		query = query.Where("is_published = ?", true)
	}
	if opts.OwnerID != uuid.Nil {
		query = query.Where("owner_id = ?", opts.OwnerID)
	}
	if opts.Query != "" {
		pattern := "%" + opts.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count videos")
	}

	var rows []model.VideoModel
	err := query.
		Preload("Owner").
		Order(orderClause(opts.SortBy, opts.SortOrder)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	videos := make([]*entity.Video, 0, len(rows))
	for i := range rows {
		videos = append(videos, toVideoDomain(&rows[i]))
	}

	return &entity.VideoPage{
		Videos:     videos,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// Create persists a new video.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create video")
	}

	video.ID = videoM.ID
	video.CreatedAt = videoM.CreatedAt
	video.UpdatedAt = videoM.UpdatedAt

	return nil
}

// Update modifies an existing video's mutable columns.
func (repo *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	updates := map[string]any{
		"title":        video.Title,
		"description":  video.Description,
		"thumbnail":    video.Thumbnail,
		"is_published": video.IsPublished,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", video.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// Delete removes a video. Dependent rows cascade at the storage layer.
func (repo *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.VideoModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete video")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// IncrementViews bumps the view counter without touching other columns.
func (repo *videoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment views")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit
}

// orderClause whitelists sortable columns so user input never reaches the
// ORDER BY clause directly.
func orderClause(sortBy, sortOrder string) string {
	column := "created_at"
	switch sortBy {
	case "views", "duration", "title", "created_at":
		column = sortBy
	}

	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}

	return column + " " + direction
}

// toVideoDomain maps the persistence model back to a pure domain entity.
func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	return &entity.Video{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Owner:       toUserDomain(data.Owner).Sanitized(),
	}
}

// fromVideoDomain maps a pure domain entity to a GORM persistence model.
func fromVideoDomain(data *entity.Video) *model.VideoModel {
	return &model.VideoModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		VideoFile:   data.VideoFile,
		Thumbnail:   data.Thumbnail,
		Duration:    data.Duration,
		Views:       data.Views,
		IsPublished: data.IsPublished,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
