package auth

import (
	"crypto/sha256"
	"crypto/subtle"

	"morrison/config"
	"morrison/internal/domain/service"
	"morrison/internal/errors"
)

// adminKeyVerifier compares candidate keys against the configured moderator secret.
type adminKeyVerifier struct {
	digest [sha256.Size]byte
}

// NewAdminKeyVerifier builds a verifier for cfg.Admin.Key.
func NewAdminKeyVerifier(cfg *config.Config) (service.AdminKeyVerifier, error) {
	if cfg.Admin.Key == "" {
		return nil, errors.New("admin key must be provided")
	}

	return &adminKeyVerifier{digest: sha256.Sum256([]byte(cfg.Admin.Key))}, nil
}

// Verify hashes both sides first so the comparison time is independent of key length.
func (v *adminKeyVerifier) Verify(key string) bool {
	if key == "" {
		return false
	}

	candidate := sha256.Sum256([]byte(key))

	return subtle.ConstantTimeCompare(candidate[:], v.digest[:]) == 1
}
