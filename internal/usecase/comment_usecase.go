package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCommentInput defines the data required to comment on a video.
type AddCommentInput struct {
	VideoID uuid.UUID
	OwnerID uuid.UUID
	Content string
}

// UpdateCommentInput defines the data required to edit a comment.
type UpdateCommentInput struct {
	CommentID   uuid.UUID
	RequesterID uuid.UUID
	Content     string
}

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	// ListComments returns a page of a video's comments, newest first.
	ListComments(ctx context.Context, videoID uuid.UUID, page, limit int) (*entity.CommentPage, error)

	// AddComment attaches a comment to a published video.
	AddComment(ctx context.Context, input *AddCommentInput) (*entity.Comment, error)

	// UpdateComment edits a comment's content. Owner only.
	UpdateComment(ctx context.Context, input *UpdateCommentInput) (*entity.Comment, error)

	// DeleteComment removes a comment. Owner only.
	DeleteComment(ctx context.Context, commentID, requesterID uuid.UUID) error
}
