package entity

import (
	"time"

	"github.com/google/uuid"
)

// LikeTargetType discriminates what a like points at.
type LikeTargetType string

const (
	LikeTargetVideo   LikeTargetType = "video"
	LikeTargetComment LikeTargetType = "comment"
	LikeTargetTweet   LikeTargetType = "tweet"
)

// Like records that a user liked a single video, comment or tweet.
// At most one like per (user, target) pair; toggling removes it.
type Like struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TargetType LikeTargetType
	TargetID   uuid.UUID
	CreatedAt  time.Time
}
