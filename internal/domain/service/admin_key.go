package service

// AdminKeyVerifier checks the shared moderator secret.
type AdminKeyVerifier interface {
	Verify(key string) bool
}
