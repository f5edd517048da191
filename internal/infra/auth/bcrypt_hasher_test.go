package auth

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"morrison/config"
	domainerrors "morrison/internal/domain/errors"
	"morrison/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T, cost, concurrency int) service.PasswordHasher {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: cost, HashConcurrency: concurrency}}
	hasher, err := NewBcryptHasher(cfg, slog.Default())
	require.NoError(t, err)

	return hasher
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher(t, bcrypt.MinCost, 2)
	ctx := context.Background()

	password := "correct horse battery staple"
	first, err := hasher.Hash(ctx, password)
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, password)
	require.NoError(t, err)

	assert.NotEqual(t, password, first)
	assert.NotEqual(t, first, second, "salted hashes must differ")

	for _, hash := range []string{first, second} {
		ok, err := hasher.Verify(ctx, password, hash)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBcryptHasher_Verify(t *testing.T) {
	hasher := newTestHasher(t, bcrypt.MinCost, 1)
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "secret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: "secret", hash: hash, want: true},
		{name: "wrong password", password: "Secret", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: "secret", hash: "invalid_hash", want: false},
		{name: "empty hash", password: "secret", hash: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := hasher.Verify(ctx, tt.password, tt.hash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := newTestHasher(t, customCost, 1)

	hash, err := hasher.Hash(context.Background(), "secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_RejectsInvalidCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MaxCost + 1}}

	_, err := NewBcryptHasher(cfg, slog.Default())
	assert.Error(t, err)
}

func TestBcryptHasher_RejectsLongPassword(t *testing.T) {
	hasher := newTestHasher(t, bcrypt.MinCost, 1)

	_, err := hasher.Hash(context.Background(), strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = hasher.Hash(context.Background(), strings.Repeat("a", 72))
	assert.NoError(t, err)
}

func TestBcryptHasher_CancelledContext(t *testing.T) {
	hasher := newTestHasher(t, bcrypt.MinCost, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hasher.Hash(ctx, "secret")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = hasher.Verify(ctx, "secret", "$2a$04$invalid")
	require.Error(t, err)
}

func TestBcryptHasher_ConcurrentUse(t *testing.T) {
	hasher := newTestHasher(t, bcrypt.MinCost, 2)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]bool, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			hash, err := hasher.Hash(ctx, "secret")
			if err != nil {
				return
			}
			ok, err := hasher.Verify(ctx, "secret", hash)
			results[i] = err == nil && ok
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		assert.True(t, ok, "worker %d", i)
	}
}
