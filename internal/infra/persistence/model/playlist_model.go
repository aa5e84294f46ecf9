package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaylistModel mirrors the 'playlists' table. Membership lives in the
// 'playlist_videos' join table.
type PlaylistModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Videos []VideoModel `gorm:"many2many:playlist_videos;joinForeignKey:PlaylistID;joinReferences:VideoID"`
}

// TableName explicitly sets the table name for GORM.
func (PlaylistModel) TableName() string {
	return "playlists"
}

// PlaylistVideoModel mirrors the 'playlist_videos' join table. Declared so the
// unique pair constraint is explicit rather than left to GORM's defaults.
type PlaylistVideoModel struct {
	PlaylistID uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaylistVideoModel) TableName() string {
	return "playlist_videos"
}
