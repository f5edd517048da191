package storage

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"
	"testing"

	"morrison/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func newTestPersister(t *testing.T, maxBytes int) (*blobImagePersister, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{Storage: &config.StorageConfig{PublicPath: "/uploads/", MaxImageBytes: maxBytes}}
	persister := NewBlobImagePersister(bucket, cfg).(*blobImagePersister)
	var seq int
	persister.newID = func() string {
		seq++

		return "id" + strconv.Itoa(seq)
	}

	return persister, bucket
}

func dataURI(subtype string, data []byte) string {
	return "data:image/" + subtype + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestPersist_WritesImage(t *testing.T) {
	persister, bucket := newTestPersister(t, 1024)
	ctx := context.Background()

	ref, err := persister.Persist(ctx, "ana", dataURI("png", pngPixel))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/ana-id1.png", ref)

	stored, err := bucket.ReadAll(ctx, "avatars/ana-id1.png")
	require.NoError(t, err)
	assert.Equal(t, pngPixel, stored)

	attrs, err := bucket.Attributes(ctx, "avatars/ana-id1.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestPersist_JPEGExtension(t *testing.T) {
	persister, _ := newTestPersister(t, 1024)
	jpegHeader := append([]byte{0xff, 0xd8, 0xff, 0xe0}, make([]byte, 16)...)

	ref, err := persister.Persist(context.Background(), "ana", dataURI("jpeg", jpegHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".jpg"))
}

func TestPersist_SanitisesOwner(t *testing.T) {
	persister, _ := newTestPersister(t, 1024)

	ref, err := persister.Persist(context.Background(), "../../etc/passwd", dataURI("png", pngPixel))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/______etc_passwd-id1.png", ref)
}

func TestPersist_OwnersSharingASanitisedNameGetDistinctKeys(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cfg := &config.Config{Storage: &config.StorageConfig{PublicPath: "/uploads", MaxImageBytes: 1024}}
	persister := NewBlobImagePersister(bucket, cfg)
	ctx := context.Background()

	first, err := persister.Persist(ctx, "a.b", dataURI("png", pngPixel))
	require.NoError(t, err)
	second, err := persister.Persist(ctx, "a_b", dataURI("png", pngPixel))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "/uploads/avatars/a_b-"))
	assert.True(t, strings.HasPrefix(second, "/uploads/avatars/a_b-"))
}

func TestDelete(t *testing.T) {
	persister, bucket := newTestPersister(t, 1024)
	ctx := context.Background()

	ref, err := persister.Persist(ctx, "ana", dataURI("png", pngPixel))
	require.NoError(t, err)

	require.NoError(t, persister.Delete(ctx, ref))

	exists, err := bucket.Exists(ctx, "avatars/ana-id1.png")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, persister.Delete(ctx, ref), "deleting twice is not an error")
	assert.Error(t, persister.Delete(ctx, "https://example.com/a.png"))
	assert.Error(t, persister.Delete(ctx, "/uploads/../config.yaml"))
}

func TestPersist_Rejects(t *testing.T) {
	persister, _ := newTestPersister(t, 32)

	tests := []struct {
		name  string
		input string
	}{
		{name: "not a data uri", input: "https://example.com/a.png"},
		{name: "not base64", input: "data:image/png;base64,***"},
		{name: "unsupported subtype", input: dataURI("svg+xml", []byte("<svg></svg>"))},
		{name: "text payload", input: dataURI("png", []byte("hello, world"))},
		{name: "too large", input: dataURI("png", pngPixel)},
		{name: "not an image mime", input: "data:text/plain;base64,aGVsbG8="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := persister.Persist(context.Background(), "ana", tt.input)
			assert.Error(t, err)
		})
	}
}

func TestLocalDir(t *testing.T) {
	dir, ok := LocalDir("file:///srv/morrison/uploads?create_dir=true")
	assert.True(t, ok)
	assert.Equal(t, "/srv/morrison/uploads", dir)

	_, ok = LocalDir("s3://bucket?region=eu-west-1")
	assert.False(t, ok)

	_, ok = LocalDir("mem://")
	assert.False(t, ok)
}
