package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. TargetType discriminates between
// videos, comments and tweets; the unique index makes a like idempotent
// per user and target.
type LikeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_target"`
	TargetType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_likes_user_target"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_target"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
