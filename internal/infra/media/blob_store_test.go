package media

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	domainerrors "vidtube/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T, maxUploadSize int64) *blobStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewWithBucket(bucket, "https://cdn.example.com/media", maxUploadSize, slog.Default())

	return store.(*blobStore)
}

func TestBlobStore_StoreAndRemove(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	url, err := store.Store(ctx, "avatar.png", "image/png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/media/"))
	assert.True(t, strings.HasSuffix(url, "-avatar.png"))

	// Stored object is retrievable under the derived key.
	key := strings.TrimPrefix(url, "https://cdn.example.com/media/")
	data, err := store.bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))

	// Remove by URL deletes the object.
	require.NoError(t, store.Remove(ctx, url))
	exists, err := store.bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	// Removing again is not an error.
	assert.NoError(t, store.Remove(ctx, url))
}

func TestBlobStore_RemoveForeignURL(t *testing.T) {
	store := newTestStore(t, 0)

	// URLs outside our public base are ignored.
	assert.NoError(t, store.Remove(context.Background(), "https://elsewhere.example.com/thing.png"))
	assert.NoError(t, store.Remove(context.Background(), ""))
}

func TestBlobStore_UniqueKeys(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	first, err := store.Store(ctx, "video.mp4", "video/mp4", strings.NewReader("aaa"))
	require.NoError(t, err)
	second, err := store.Store(ctx, "video.mp4", "video/mp4", strings.NewReader("bbb"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobStore_MaxUploadSize(t *testing.T) {
	store := newTestStore(t, 8)
	ctx := context.Background()

	_, err := store.Store(ctx, "big.bin", "application/octet-stream", strings.NewReader("way more than eight bytes"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaTooLarge))

	// Under the cap succeeds.
	url, err := store.Store(ctx, "small.bin", "application/octet-stream", strings.NewReader("tiny"))
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}
