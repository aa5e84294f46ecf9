package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTweetInput defines the data required to post a tweet.
type CreateTweetInput struct {
	OwnerID uuid.UUID
	Content string
}

// UpdateTweetInput defines the data required to edit a tweet.
type UpdateTweetInput struct {
	TweetID     uuid.UUID
	RequesterID uuid.UUID
	Content     string
}

// TweetUsecase defines the interface for channel post operations.
type TweetUsecase interface {
	// CreateTweet posts a new tweet on the user's channel feed.
	CreateTweet(ctx context.Context, input *CreateTweetInput) (*entity.Tweet, error)

	// ListUserTweets returns a user's tweets, newest first.
	ListUserTweets(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error)

	// UpdateTweet edits a tweet's content. Owner only.
	UpdateTweet(ctx context.Context, input *UpdateTweetInput) (*entity.Tweet, error)

	// DeleteTweet removes a tweet. Owner only.
	DeleteTweet(ctx context.Context, tweetID, requesterID uuid.UUID) error
}
