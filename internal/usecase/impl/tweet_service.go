package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tweetService implements the TweetUsecase interface.
type tweetService struct {
	tweetRepo repository.TweetRepository
	logger    *slog.Logger
}

// TweetServiceParams holds dependencies for TweetService, injected by Fx.
type TweetServiceParams struct {
	fx.In

	TweetRepo repository.TweetRepository
	Logger    *slog.Logger
}

// NewTweetService is the constructor for tweetService.
func NewTweetService(params TweetServiceParams) usecase.TweetUsecase {
	return &tweetService{
		tweetRepo: params.TweetRepo,
		logger:    params.Logger,
	}
}

func (srv *tweetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTweet posts a new tweet on the user's channel feed.
func (srv *tweetService) CreateTweet(ctx context.Context, input *usecase.CreateTweetInput) (*entity.Tweet, error) {
	tweet := &entity.Tweet{
		OwnerID: input.OwnerID,
		Content: input.Content,
	}

	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tweet created", slog.Any("tweetID", tweet.ID))

	return tweet, nil
}

// ListUserTweets returns a user's tweets, newest first.
func (srv *tweetService) ListUserTweets(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tweet, error) {
	tweets, err := srv.tweetRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tweets")
	}

	return tweets, nil
}

// UpdateTweet edits a tweet's content. Owner only.
func (srv *tweetService) UpdateTweet(ctx context.Context, input *usecase.UpdateTweetInput) (*entity.Tweet, error) {
	tweet, err := srv.loadOwnedTweet(ctx, input.TweetID, input.RequesterID)
	if err != nil {
		return nil, err
	}

	tweet.Content = input.Content
	if err := srv.tweetRepo.Update(ctx, tweet); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tweet updated", slog.Any("tweetID", tweet.ID))

	return tweet, nil
}

// DeleteTweet removes a tweet. Owner only.
func (srv *tweetService) DeleteTweet(ctx context.Context, tweetID, requesterID uuid.UUID) error {
	if _, err := srv.loadOwnedTweet(ctx, tweetID, requesterID); err != nil {
		return err
	}

	if err := srv.tweetRepo.Delete(ctx, tweetID); err != nil {
		return err
	}

	srv.log(ctx).Info("Tweet deleted", slog.Any("tweetID", tweetID))

	return nil
}

func (srv *tweetService) loadOwnedTweet(ctx context.Context, tweetID, requesterID uuid.UUID) (*entity.Tweet, error) {
	tweet, err := srv.tweetRepo.FindByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrTweetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTweetNotFound, "tweet not found")
		}

		return nil, errors.Wrap(err, "failed to load tweet")
	}

	if tweet.OwnerID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner may modify a tweet")
	}

	return tweet, nil
}
