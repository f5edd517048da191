package auth

import (
	"testing"

	"morrison/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminKeyVerifier(t *testing.T) {
	cfg := &config.Config{}
	cfg.Admin.Key = "s3cret-admin"

	verifier, err := NewAdminKeyVerifier(cfg)
	require.NoError(t, err)

	assert.True(t, verifier.Verify("s3cret-admin"))
	assert.False(t, verifier.Verify("s3cret-admin "))
	assert.False(t, verifier.Verify("S3CRET-ADMIN"))
	assert.False(t, verifier.Verify(""))
}

func TestAdminKeyVerifier_RequiresKey(t *testing.T) {
	_, err := NewAdminKeyVerifier(&config.Config{})
	assert.Error(t, err)
}
