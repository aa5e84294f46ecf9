// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"
	"time"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	FullName string
	Password string
	Avatar   *FileUpload // Optional avatar image.
	Cover    *FileUpload // Optional cover image.
}

// LoginInput defines the data required for a user to log in.
// Identifier is a username or an email address.
type LoginInput struct {
	Identifier string
	Password   string
}

// RefreshSessionInput carries the refresh token presented by the client.
type RefreshSessionInput struct {
	RefreshToken string
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// UpdateAccountInput carries the mutable profile fields. Empty fields are
// left unchanged.
type UpdateAccountInput struct {
	UserID   uuid.UUID
	FullName string
	Email    string
}

// FileUpload wraps an uploaded file streamed from a multipart request.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken     string
	RefreshToken    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	User            *entity.User
}

// RefreshSessionOutput returns the rotated token pair.
type RefreshSessionOutput struct {
	AccessToken     string
	RefreshToken    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates a new account with a hashed password.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a fresh token pair; the refresh
	// token becomes the user's single active session token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshSession rotates a presented refresh token for a new pair. A
	// token that was already rotated out or revoked is rejected.
	RefreshSession(ctx context.Context, input *RefreshSessionInput) (*RefreshSessionOutput, error)

	// Logout revokes the user's active refresh token. Idempotent.
	Logout(ctx context.Context, userID uuid.UUID) error

	// ChangePassword verifies the old password before storing a new hash.
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// GetCurrentUser loads the authenticated user's sanitized record.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateAccount updates full name and email.
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*entity.User, error)

	// UpdateAvatar replaces the avatar image and deletes the previous one.
	UpdateAvatar(ctx context.Context, userID uuid.UUID, file *FileUpload) (*entity.User, error)

	// UpdateCoverImage replaces the cover image and deletes the previous one.
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, file *FileUpload) (*entity.User, error)

	// GetChannelProfile loads the public channel page for a username.
	// viewerID may be uuid.Nil for anonymous viewers.
	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error)

	// GetWatchHistory returns the user's watch history, most recent first.
	GetWatchHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]*entity.WatchHistoryEntry, error)

	// GetChannelQR renders a share QR code PNG for a channel page.
	GetChannelQR(ctx context.Context, username string) ([]byte, error)
}
