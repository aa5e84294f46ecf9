package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user comment attached to a video.
type Comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner is populated on read models.
	Owner *User
}

// CommentPage is a single page of a video's comments.
type CommentPage struct {
	Comments   []*Comment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
