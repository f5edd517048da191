package auth

import (
	"strings"
	"testing"
	"time"

	"morrison/config"
	domainerrors "morrison/internal/domain/errors"
	"morrison/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Access = secret
	cfg.Env.ServiceName = "morrison"

	return cfg
}

func newTestTokenService(t *testing.T, secret string, clock *fakeClock) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig(secret, time.Hour), WithClock(clock.Now))
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokenService(t, testSecret, clock)

	token, issued, err := svc.Issue(42, "ana")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, clock.now.Add(time.Hour).Equal(issued.ExpiresAt.Time))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "42", claims.Subject)
	assert.True(t, clock.now.Equal(claims.IssuedAt.Time))
	assert.Equal(t, issued.ID, claims.ID)
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestTokenService(t, testSecret, clock)

	first, _, err := svc.Issue(1, "ana")
	require.NoError(t, err)
	second, _, err := svc.Issue(1, "ana")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokenService(t, testSecret, clock)

	token, _, err := svc.Issue(1, "ana")
	require.NoError(t, err)

	clock.now = clock.now.Add(59 * time.Minute)
	_, err = svc.Verify(token)
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_TamperedToken(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestTokenService(t, testSecret, clock)

	token, _, err := svc.Issue(1, "ana")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Re-sign a different payload with another key and splice in the original signature.
	forged, _, err := newTestTokenService(t, "another-secret", clock).Issue(2, "mallory")
	require.NoError(t, err)
	forgedParts := strings.Split(forged, ".")
	tampered := forgedParts[0] + "." + forgedParts[1] + "." + parts[2]

	_, err = svc.Verify(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	issuer := newTestTokenService(t, "another-secret", clock)
	verifier := newTestTokenService(t, testSecret, clock)

	token, _, err := issuer.Issue(1, "ana")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredAndForgedIsInvalid(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	issuer := newTestTokenService(t, "another-secret", clock)
	verifier := newTestTokenService(t, testSecret, clock)

	token, _, err := issuer.Issue(1, "ana")
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)
	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid), "signature is checked before expiry")
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestTokenService(t, testSecret, clock)

	claims := &service.Claims{
		AccountID: 1,
		Username:  "ana",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "morrison",
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(clock.now),
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestTokenService(t, testSecret, &fakeClock{now: time.Now()})

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
}
