package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a short text post on a user's channel feed.
type Tweet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner is populated on read models.
	Owner *User
}
