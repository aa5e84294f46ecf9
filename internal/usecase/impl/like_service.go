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

// likeService implements the LikeUsecase interface.
type likeService struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	tweetRepo   repository.TweetRepository
	logger      *slog.Logger
}

// LikeServiceParams holds dependencies for LikeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	LikeRepo    repository.LikeRepository
	VideoRepo   repository.VideoRepository
	CommentRepo repository.CommentRepository
	TweetRepo   repository.TweetRepository
	Logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		likeRepo:    params.LikeRepo,
		videoRepo:   params.VideoRepo,
		commentRepo: params.CommentRepo,
		tweetRepo:   params.TweetRepo,
		logger:      params.Logger,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleVideoLike likes the video, or removes the like when present.
func (srv *likeService) ToggleVideoLike(ctx context.Context, userID, videoID uuid.UUID) (*usecase.ToggleLikeOutput, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to load video")
	}

	return srv.toggle(ctx, userID, entity.LikeTargetVideo, videoID)
}

// ToggleCommentLike likes the comment, or removes the like when present.
func (srv *likeService) ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (*usecase.ToggleLikeOutput, error) {
	if _, err := srv.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}

		return nil, errors.Wrap(err, "failed to load comment")
	}

	return srv.toggle(ctx, userID, entity.LikeTargetComment, commentID)
}

// ToggleTweetLike likes the tweet, or removes the like when present.
func (srv *likeService) ToggleTweetLike(ctx context.Context, userID, tweetID uuid.UUID) (*usecase.ToggleLikeOutput, error) {
	if _, err := srv.tweetRepo.FindByID(ctx, tweetID); err != nil {
		if errors.Is(err, repository.ErrTweetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTweetNotFound, "tweet not found")
		}

		return nil, errors.Wrap(err, "failed to load tweet")
	}

	return srv.toggle(ctx, userID, entity.LikeTargetTweet, tweetID)
}

// ListLikedVideos returns the videos the user has liked, newest first.
func (srv *likeService) ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error) {
	videos, err := srv.likeRepo.ListLikedVideos(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	return videos, nil
}

func (srv *likeService) toggle(ctx context.Context, userID uuid.UUID, targetType entity.LikeTargetType, targetID uuid.UUID) (*usecase.ToggleLikeOutput, error) {
	liked := false

	existing, err := srv.likeRepo.Find(ctx, userID, targetType, targetID)
	switch {
	case err == nil:
		if delErr := srv.likeRepo.Delete(ctx, existing.ID); delErr != nil {
			return nil, delErr
		}
	case errors.Is(err, repository.ErrLikeNotFound):
		like := &entity.Like{
			UserID:     userID,
			TargetType: targetType,
			TargetID:   targetID,
		}
		if createErr := srv.likeRepo.Create(ctx, like); createErr != nil {
			return nil, createErr
		}
		liked = true
	default:
		return nil, errors.Wrap(err, "failed to look up like")
	}

	total, err := srv.likeRepo.CountByTarget(ctx, targetType, targetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count likes")
	}

	srv.log(ctx).Debug("Like toggled",
		slog.String("targetType", string(targetType)),
		slog.Any("targetID", targetID),
		slog.Bool("liked", liked),
	)

	return &usecase.ToggleLikeOutput{Liked: liked, TotalLikes: total}, nil
}
