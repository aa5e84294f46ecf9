package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video represents a published or draft video on a channel.
type Video struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // The user who uploaded the video.
	Title       string
	Description string
	VideoFile   string // Public URL of the video object in the media store.
	Thumbnail   string // Public URL of the thumbnail image.
	Duration    float64
	Views       int64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Owner is populated on read models that join the channel data.
	Owner *User
}

// VideoListOptions controls paging, filtering and ordering of video listings.
type VideoListOptions struct {
	Page      int
	Limit     int
	Query     string    // Optional full-text match on title/description.
	OwnerID   uuid.UUID // Optional filter to a single channel; uuid.Nil means all.
	SortBy    string    // "created_at", "views", "duration", "title".
	SortOrder string    // "asc" or "desc".

	// IncludeUnpublished is only honored for the owner's own listings.
	IncludeUnpublished bool
}

// VideoPage is a single page of a video listing.
type VideoPage struct {
	Videos     []*Video
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
