// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a registered channel
// owner and viewer. Username is the unique credential key and is lower-cased
// at write time; Email is a secondary unique lookup key.
type User struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username   string    // Unique handle, lower-cased, used as the login identifier.
	Email      string    // The user's contact email, also accepted as a login identifier.
	FullName   string    // Display name shown on the channel.
	Avatar     string    // Public URL of the avatar image in the media store.
	CoverImage string    // Public URL of the channel cover image. Optional.

	// PasswordHash is the bcrypt hash of the user's password. It never
	// leaves the usecase layer; handlers only ever see sanitized users.
	PasswordHash string

	// RefreshToken is the single currently-valid refresh token for this
	// user, owned exclusively by the session subsystem. Empty means no
	// active session. Any presented refresh token that does not match this
	// value byte-for-byte is rejected by the rotation protocol.
	RefreshToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sanitized returns a copy with the secret fields stripped. This is the shape
// attached to the request context and serialized in responses.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.PasswordHash = ""
	clone.RefreshToken = ""

	return &clone
}

// ChannelProfile is the public view of a user's channel with the
// subscription aggregates joined in.
type ChannelProfile struct {
	User              *User
	SubscriberCount   int64
	SubscribedToCount int64
	IsSubscribed      bool
}

// WatchHistoryEntry records a video watched by a user, most recent first.
type WatchHistoryEntry struct {
	Video     *Video
	WatchedAt time.Time
}
