package service

import (
	"context"
)

// VideoPublishedEvent is emitted when a video becomes publicly visible, for
// async fan-out to subscriber feeds and notifications.
type VideoPublishedEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	VideoID      string `json:"video_id"`
	ChannelID    string `json:"channel_id"`
	ChannelName  string `json:"channel_name"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	PublishedAt  string `json:"published_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVideoEvent publishes a video lifecycle event for async processing
	PublishVideoEvent(ctx context.Context, event *VideoPublishedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
