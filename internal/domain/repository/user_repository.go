// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrRefreshTokenMismatch is returned by RotateRefreshToken when the
	// stored refresh token no longer matches the presented one: the token
	// was already rotated out, revoked by logout, or never issued.
	ErrRefreshTokenMismatch = errors.New("refresh token mismatch")
)

// UserRepository defines the standard operations for user persistence plus
// the session-store adapter: the single currently-valid refresh token lives
// on the user record and is only ever touched through the *RefreshToken
// methods below, which run column-targeted updates with no unrelated model
// validation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their lower-cased handle.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces only the password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error

	// StoreRefreshToken unconditionally overwrites the user's refresh
	// token. Logging in elsewhere invalidates the previous session's
	// refresh ability.
	StoreRefreshToken(ctx context.Context, id uuid.UUID, token string) error

	// ClearRefreshToken removes the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error

	// RotateRefreshToken atomically replaces oldToken with newToken using a
	// single conditional update keyed on the old value. If the stored token
	// does not match oldToken the update affects no rows and
	// ErrRefreshTokenMismatch is returned; under concurrent rotation
	// exactly one caller can win.
	RotateRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) error

	// GetChannelProfile loads the public channel view for a username with
	// subscription aggregates; viewerID determines IsSubscribed and may be
	// uuid.Nil.
	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error)

	// AddWatchEntry records that the user watched a video. Re-watching
	// moves the entry to the front rather than duplicating it.
	AddWatchEntry(ctx context.Context, userID, videoID uuid.UUID) error

	// ListWatchHistory returns the user's watch history, most recent first.
	ListWatchHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entity.WatchHistoryEntry, error)
}
