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

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	VideoRepo   repository.VideoRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		videoRepo:   params.VideoRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListComments returns a page of a video's comments, newest first.
func (srv *commentService) ListComments(ctx context.Context, videoID uuid.UUID, page, limit int) (*entity.CommentPage, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to load video")
	}

	comments, err := srv.commentRepo.ListByVideo(ctx, videoID, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// AddComment attaches a comment to a published video.
func (srv *commentService) AddComment(ctx context.Context, input *usecase.AddCommentInput) (*entity.Comment, error) {
	video, err := srv.videoRepo.FindByID(ctx, input.VideoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
		}

		return nil, errors.Wrap(err, "failed to load video")
	}

	if !video.IsPublished && video.OwnerID != input.OwnerID {
		return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "video not found")
	}

	comment := &entity.Comment{
		VideoID: input.VideoID,
		OwnerID: input.OwnerID,
		Content: input.Content,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Comment added", slog.Any("commentID", comment.ID), slog.Any("videoID", input.VideoID))

	return comment, nil
}

// UpdateComment edits a comment's content. Owner only.
func (srv *commentService) UpdateComment(ctx context.Context, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	comment, err := srv.loadOwnedComment(ctx, input.CommentID, input.RequesterID)
	if err != nil {
		return nil, err
	}

	comment.Content = input.Content
	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Comment updated", slog.Any("commentID", comment.ID))

	return comment, nil
}

// DeleteComment removes a comment. Owner only.
func (srv *commentService) DeleteComment(ctx context.Context, commentID, requesterID uuid.UUID) error {
	if _, err := srv.loadOwnedComment(ctx, commentID, requesterID); err != nil {
		return err
	}

	if err := srv.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("commentID", commentID))

	return nil
}

func (srv *commentService) loadOwnedComment(ctx context.Context, commentID, requesterID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}

		return nil, errors.Wrap(err, "failed to load comment")
	}

	if comment.OwnerID != requesterID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner may modify a comment")
	}

	return comment, nil
}
