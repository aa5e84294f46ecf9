package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// RefreshToken holds the single active refresh token for the user; NULL means
// no live session.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	Avatar       string    `gorm:"type:varchar(512)"`
	CoverImage   string    `gorm:"type:varchar(512)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	RefreshToken *string   `gorm:"type:varchar(1024)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Videos []VideoModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// WatchHistoryModel mirrors the 'watch_history' table. One row per user/video
// pair; re-watching updates WatchedAt instead of inserting a duplicate.
type WatchHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_history_user_video"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_history_user_video"`
	WatchedAt time.Time `gorm:"not null;index"`

	Video *VideoModel `gorm:"foreignKey:VideoID"`
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
