package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// ListByVideo returns a page of a video's comments, newest first, with
	// owners joined in.
	ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) (*entity.CommentPage, error)

	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update modifies the content of an existing comment.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment.
	Delete(ctx context.Context, id uuid.UUID) error
}
