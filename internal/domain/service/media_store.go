package service

import (
	"context"
	"io"
)

// MediaStore abstracts the object storage used for uploaded media
// (avatars, cover images, video files, thumbnails).
type MediaStore interface {
	// Store writes the file under a unique key derived from filename and
	// returns the public URL. contentType may be empty; size caps are
	// enforced by the implementation.
	Store(ctx context.Context, filename, contentType string, r io.Reader) (string, error)

	// Remove deletes a previously stored object by its public URL.
	// Removing an unknown URL is not an error.
	Remove(ctx context.Context, url string) error
}
