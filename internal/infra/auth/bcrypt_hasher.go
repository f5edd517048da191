// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"morrison/config"
	domainerrors "morrison/internal/domain/errors"
	"morrison/internal/domain/service"
	"morrison/internal/errors"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// Every hash and compare runs under a weighted semaphore so CPU-bound work stays bounded.
type bcryptHasher struct {
	cost   int
	pool   *semaphore.Weighted
	logger *slog.Logger
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config, logger *slog.Logger) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	concurrency := 1
	if cfg.Auth != nil {
		if cfg.Auth.BcryptCost != 0 {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.HashConcurrency > 0 {
			concurrency = cfg.Auth.HashConcurrency
		}
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &bcryptHasher{
		cost:   cost,
		pool:   semaphore.NewWeighted(int64(concurrency)),
		logger: logger,
	}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", domainerrors.ErrValidationFailed.WithDetails("password must be at most 72 bytes")
	}

	if err := h.pool.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "acquire hashing slot")
	}
	defer h.pool.Release(1)

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Verify compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	if err := h.pool.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, "acquire hashing slot")
	}
	defer h.pool.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// Stored hash is unreadable; treat as a failed login but leave a trace for operators.
		h.logger.WarnContext(ctx, "Stored password hash is malformed", slog.Any("error", err))

		return false, nil
	}
}
