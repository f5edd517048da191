// Package storage persists uploaded avatar images to a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"

	"morrison/config"
	"morrison/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

// Params defines the parameters required for the avatar bucket
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// OpenBucket opens the configured bucket and closes it when the application stops.
func OpenBucket(params Params) (*blob.Bucket, error) {
	bucketURL := params.Config.Storage.BucketURL
	if bucketURL == "" {
		bucketURL = "mem://"
		params.Logger.Warn("storage.bucketUrl is empty, avatars are kept in memory")
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", redactURL(bucketURL))
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.Wrap(bucket.Close(), "close bucket")
		},
	})

	return bucket, nil
}

// LocalDir returns the directory behind a file:// bucket URL.
func LocalDir(bucketURL string) (string, bool) {
	u, err := url.Parse(bucketURL)
	if err != nil || u.Scheme != "file" || u.Path == "" {
		return "", false
	}

	return u.Path, true
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	u.User = nil

	return u.String()
}
