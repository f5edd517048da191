package service

import "context"

// ImagePersister stores an uploaded avatar and returns a reference clients can load it from.
type ImagePersister interface {
	// Persist decodes a data URI image and stores it for owner.
	Persist(ctx context.Context, owner string, dataURI string) (string, error)
	// Delete removes a previously persisted avatar by its reference.
	Delete(ctx context.Context, ref string) error
}
