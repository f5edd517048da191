package storage

import (
	"context"
	"encoding/base64"
	"net/http"
	"regexp"
	"strings"

	"morrison/config"
	"morrison/internal/domain/service"
	"morrison/internal/errors"
	"morrison/internal/util"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

var (
	dataURIPattern = regexp.MustCompile(`^data:image/([A-Za-z-+/]+);base64,(.+)$`)
	unsafeOwner    = regexp.MustCompile(`[^A-Za-z0-9_-]`)

	// Accepted image subtypes and the extension each is stored under
	imageExtensions = map[string]string{
		"png":  "png",
		"jpeg": "jpg",
		"jpg":  "jpg",
		"gif":  "gif",
		"webp": "webp",
	}
)

// ErrInvalidDataURI is returned for payloads that are not base64 image data URIs.
var ErrInvalidDataURI = errors.New("avatar must be a base64 encoded image data URI")

type blobImagePersister struct {
	bucket     *blob.Bucket
	publicPath string
	maxBytes   int
	newID      func() string
}

// NewBlobImagePersister stores avatars in bucket and returns references under the configured public path.
func NewBlobImagePersister(bucket *blob.Bucket, cfg *config.Config) service.ImagePersister {
	return &blobImagePersister{
		bucket:     bucket,
		publicPath: strings.TrimRight(cfg.Storage.PublicPath, "/"),
		maxBytes:   cfg.Storage.MaxImageBytes,
		newID:      uuid.NewString,
	}
}

// Persist decodes dataURI and writes it to avatars/<owner>-<uuid>.<ext>.
func (p *blobImagePersister) Persist(ctx context.Context, owner string, dataURI string) (string, error) {
	match := dataURIPattern.FindStringSubmatch(dataURI)
	if match == nil {
		return "", ErrInvalidDataURI
	}

	subtype := strings.ToLower(match[1])
	ext, ok := imageExtensions[subtype]
	if !ok {
		return "", errors.Errorf("unsupported image type image/%s", subtype)
	}

	data, err := base64.StdEncoding.DecodeString(match[2])
	if err != nil {
		return "", errors.Wrap(err, "decode avatar")
	}
	if len(data) == 0 {
		return "", ErrInvalidDataURI
	}
	if p.maxBytes > 0 && len(data) > p.maxBytes {
		return "", errors.Errorf("avatar is %s, limit is %s", util.FormatBytes(int64(len(data))), util.FormatBytes(int64(p.maxBytes)))
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.Errorf("avatar content is %s, not an image", contentType)
	}

	key := "avatars/" + unsafeOwner.ReplaceAllString(owner, "_") + "-" + p.newID() + "." + ext

	if err := p.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrap(err, "write avatar")
	}

	return p.publicPath + "/" + key, nil
}

// Delete removes the avatar behind ref. A missing object is not an error.
func (p *blobImagePersister) Delete(ctx context.Context, ref string) error {
	key, ok := strings.CutPrefix(ref, p.publicPath+"/")
	if !ok || !strings.HasPrefix(key, "avatars/") {
		return errors.Errorf("avatar reference %q is not served from this bucket", ref)
	}

	if err := p.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete avatar")
	}

	return nil
}
