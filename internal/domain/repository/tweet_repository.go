package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTweetNotFound is returned when a tweet is not found.
var ErrTweetNotFound = errors.New("tweet not found")

// TweetRepository defines the operations backing channel posts.
type TweetRepository interface {
	// FindByID retrieves a tweet by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error)

	// ListByOwner returns all tweets posted by a user, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error)

	// Create persists a new tweet.
	Create(ctx context.Context, tweet *entity.Tweet) error

	// Update persists changes to an existing tweet.
	Update(ctx context.Context, tweet *entity.Tweet) error

	// Delete removes a tweet by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
