package postgres

import (
	"context"
	"strings"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by their handle. Usernames are stored
// lower-cased, so the lookup folds case first.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "username = ?", strings.ToLower(username)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Reflect the generated ID and timestamps back onto the entity.
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies the profile columns of an existing user. The password hash
// and refresh token are deliberately excluded; they have dedicated methods.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"username":    strings.ToLower(user.Username),
		"email":       user.Email,
		"full_name":   user.FullName,
		"avatar":      user.Avatar,
		"cover_image": user.CoverImage,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces only the password hash column.
func (repo *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// StoreRefreshToken unconditionally overwrites the stored refresh token.
func (repo *userRepository) StoreRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("refresh_token", token)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ClearRefreshToken removes the stored refresh token. Clearing an already
// empty slot is not an error, so logout is idempotent.
func (repo *userRepository) ClearRefreshToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("refresh_token", gorm.Expr("NULL"))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear refresh token")
	}

	return nil
}

// RotateRefreshToken swaps oldToken for newToken in a single conditional
// update keyed on the old value. A presented token that no longer matches the
// stored one affects zero rows; under concurrent rotation of the same token
// exactly one caller wins and every other caller gets ErrRefreshTokenMismatch.
func (repo *userRepository) RotateRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND refresh_token = ?", id, oldToken).
		Update("refresh_token", newToken)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to rotate refresh token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenMismatch
	}

	return nil
}

// GetChannelProfile loads the public channel view for a username together with
// the subscription aggregates.
func (repo *userRepository) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	user, err := repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	profile := &entity.ChannelProfile{User: user.Sanitized()}

	db := repo.db.WithContext(ctx)
	if err := db.Model(&model.SubscriptionModel{}).
		Where("channel_id = ?", user.ID).
		Count(&profile.SubscriberCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}
	if err := db.Model(&model.SubscriptionModel{}).
		Where("subscriber_id = ?", user.ID).
		Count(&profile.SubscribedToCount).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count subscribed channels")
	}

	if viewerID != uuid.Nil {
		var viewerSubs int64
		if err := db.Model(&model.SubscriptionModel{}).
			Where("subscriber_id = ? AND channel_id = ?", viewerID, user.ID).
			Count(&viewerSubs).Error; err != nil {
			return nil, errors.Wrap(err, "failed to check viewer subscription")
		}
		profile.IsSubscribed = viewerSubs > 0
	}

	return profile, nil
}

// AddWatchEntry records that the user watched a video. Re-watching bumps
// WatchedAt on the existing row instead of inserting a duplicate.
func (repo *userRepository) AddWatchEntry(ctx context.Context, userID, videoID uuid.UUID) error {
	entry := model.WatchHistoryModel{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVideoNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record watch entry")
	}

	return nil
}

// ListWatchHistory returns the user's watch history, most recent first.
func (repo *userRepository) ListWatchHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entity.WatchHistoryEntry, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var rows []model.WatchHistoryModel
	err := repo.db.WithContext(ctx).
		Preload("Video").
		Preload("Video.Owner").
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watch history")
	}

	entries := make([]*entity.WatchHistoryEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, &entity.WatchHistoryEntry{
			Video:     toVideoDomain(rows[i].Video),
			WatchedAt: rows[i].WatchedAt,
		})
	}

	return entries, nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		FullName:     data.FullName,
		Avatar:       data.Avatar,
		CoverImage:   data.CoverImage,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.RefreshToken != nil {
		user.RefreshToken = *data.RefreshToken
	}

	return user
}

// fromUserDomain maps a pure domain entity to a GORM persistence model.
func fromUserDomain(data *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:           data.ID,
		Username:     strings.ToLower(data.Username),
		Email:        data.Email,
		FullName:     data.FullName,
		Avatar:       data.Avatar,
		CoverImage:   data.CoverImage,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.RefreshToken != "" {
		token := data.RefreshToken
		userM.RefreshToken = &token
	}

	return userM
}
